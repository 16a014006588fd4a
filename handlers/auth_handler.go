package handlers

import (
	"context"
	"net/http"

	"github.com/olegamobile/lets-play/internal/auth"
	"github.com/olegamobile/lets-play/middleware"
	"github.com/olegamobile/lets-play/services"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// invalidCredentialsMessage is the only login failure text clients see
const invalidCredentialsMessage = "Invalid email or password"

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	JWT string `json:"jwt"`
}

// CredentialAuthenticator verifies an email and password
type CredentialAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (*auth.Principal, error)
}

// TokenIssuer signs a token for a subject
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// AuthHandler handles login
type AuthHandler struct {
	authenticator CredentialAuthenticator
	tokens        TokenIssuer
	logger        *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authenticator CredentialAuthenticator, tokens TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	var req LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		HandleDecodeError(w, err, h.logger)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	principal, err := h.authenticator.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if services.IsUnauthorizedError(err) {
			h.logger.Info("login failed",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w, invalidCredentialsMessage)
			return
		}
		HandleServiceError(w, err, h.logger)
		return
	}

	token, err := h.tokens.Issue(principal.Subject)
	if err != nil {
		h.logger.Error("failed to issue token",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteInternalServerError(w, "")
		return
	}

	h.logger.Info("login succeeded",
		zap.String("request_id", requestID),
		zap.String("user_id", principal.UserID.String()))
	_ = utils.WriteOK(w, LoginResponse{JWT: token})
}
