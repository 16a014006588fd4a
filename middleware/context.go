package middleware

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/olegamobile/lets-play/internal/auth"
)

// Context key type to avoid collisions
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"

	// AuthenticatedContextKey is the context key for the caller's identity
	AuthenticatedContextKey contextKey = "authenticated_context"
)

// GetRequestIDFromContext retrieves the request ID from context.
// Falls back to the id set by chi's RequestID middleware.
func GetRequestIDFromContext(ctx context.Context) string {
	if val := ctx.Value(RequestIDKey); val != nil {
		if requestID, ok := val.(string); ok {
			return requestID
		}
	}
	return chimw.GetReqID(ctx)
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetAuthenticatedContext retrieves the caller's identity, nil when anonymous
func GetAuthenticatedContext(ctx context.Context) *auth.AuthenticatedContext {
	if val := ctx.Value(AuthenticatedContextKey); val != nil {
		if ac, ok := val.(*auth.AuthenticatedContext); ok {
			return ac
		}
	}
	return nil
}

// WithAuthenticatedContext attaches the caller's identity to the context
func WithAuthenticatedContext(ctx context.Context, ac *auth.AuthenticatedContext) context.Context {
	return context.WithValue(ctx, AuthenticatedContextKey, ac)
}

// GetPrincipalFromContext is a shorthand for the authenticated principal, nil when anonymous
func GetPrincipalFromContext(ctx context.Context) *auth.Principal {
	if ac := GetAuthenticatedContext(ctx); ac != nil {
		return ac.Principal
	}
	return nil
}
