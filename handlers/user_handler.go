package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/middleware"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/services"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// UserResponse is the public view of an account. It never includes the password.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// NewUserResponse converts a stored user to its public view
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// UserService defines the account operations used by UserHandler
type UserService interface {
	Register(ctx context.Context, input services.RegisterInput) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserHandler handles registration and the current user
type UserHandler struct {
	service UserService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// HandleRegister handles POST /users
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		HandleDecodeError(w, err, h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), input)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("user registered",
		zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
		zap.String("user_id", user.ID.String()))
	_ = utils.WriteOK(w, NewUserResponse(user))
}

// HandleMe handles GET /users/me
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		_ = utils.WriteUnauthorized(w, "")
		return
	}

	user, err := h.service.GetByID(r.Context(), principal.UserID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	_ = utils.WriteOK(w, NewUserResponse(user))
}
