package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// Recover turns a handler panic into a generic 500 response.
// The panic value and stack are logged, never sent to the client.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				logger.Error("request panic",
					zap.String("request_id", GetRequestIDFromContext(r.Context())),
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.Any("panic", p),
					zap.ByteString("stack", debug.Stack()))

				_ = utils.WriteInternalServerError(w, "")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
