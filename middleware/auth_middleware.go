package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/olegamobile/lets-play/internal/auth"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"go.uber.org/zap"
)

// bearerPrefix is matched case-sensitively, including the single space
const bearerPrefix = "Bearer "

// TokenVerifier is the part of the token codec the gate needs
type TokenVerifier interface {
	ParseSubject(token string) (string, error)
	Validate(token, expectedSubject string) bool
}

// PrincipalResolver loads the user behind a token subject
type PrincipalResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware resolves the caller's identity from a bearer token
type AuthMiddleware struct {
	tokens   TokenVerifier
	resolver PrincipalResolver
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenVerifier, resolver PrincipalResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		resolver: resolver,
		logger:   logger,
	}
}

// Authenticate attaches an AuthenticatedContext when the request carries a
// valid bearer token for an existing user. It never rejects a request:
// anything short of a verified identity continues anonymously and the
// access policy decides.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// already authenticated further up the chain
		if GetAuthenticatedContext(ctx) != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractBearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if ac := m.resolve(ctx, token); ac != nil {
			r = r.WithContext(WithAuthenticatedContext(ctx, ac))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolve(ctx context.Context, token string) *auth.AuthenticatedContext {
	requestID := GetRequestIDFromContext(ctx)

	subject, err := m.tokens.ParseSubject(token)
	if err != nil {
		m.logger.Debug("bearer token rejected",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil
	}

	user, err := m.resolver.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			m.logger.Debug("token subject has no account",
				zap.String("request_id", requestID))
		} else {
			m.logger.Warn("failed to resolve token subject",
				zap.String("request_id", requestID),
				zap.Error(err))
		}
		return nil
	}

	if !m.tokens.Validate(token, user.Email) {
		m.logger.Debug("token does not match account",
			zap.String("request_id", requestID))
		return nil
	}

	ac := auth.NewAuthenticatedContext(auth.NewPrincipal(user))
	m.logger.Debug("authentication successful",
		zap.String("request_id", requestID),
		zap.String("user_id", user.ID.String()),
		zap.Strings("authorities", ac.Authorities))
	return ac
}

// extractBearerToken returns the token after an exact "Bearer " prefix
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}
