package middleware

import (
	"net/http"

	"github.com/olegamobile/lets-play/internal/policy"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// AccessEvaluator decides whether a route needs an authenticated caller
type AccessEvaluator interface {
	Evaluate(method, path string) policy.Decision
}

// PolicyEnforcementMiddleware rejects anonymous requests to protected routes
type PolicyEnforcementMiddleware struct {
	policy AccessEvaluator
	logger *zap.Logger
}

// NewPolicyEnforcementMiddleware creates a new PolicyEnforcementMiddleware
func NewPolicyEnforcementMiddleware(p AccessEvaluator, logger *zap.Logger) *PolicyEnforcementMiddleware {
	return &PolicyEnforcementMiddleware{
		policy: p,
		logger: logger,
	}
}

// EnforcePolicy must run after Authenticate. Protected routes without an
// identity get 401 before the handler runs.
func (m *PolicyEnforcementMiddleware) EnforcePolicy(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		decision := m.policy.Evaluate(r.Method, r.URL.Path)
		if !decision.RequiresAuthentication() {
			next.ServeHTTP(w, r)
			return
		}

		if GetAuthenticatedContext(ctx) == nil {
			m.logger.Info("unauthenticated request to protected route",
				zap.String("request_id", GetRequestIDFromContext(ctx)),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			_ = utils.WriteUnauthorized(w, "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
