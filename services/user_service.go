package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"github.com/olegamobile/lets-play/utils"
	"go.uber.org/zap"
)

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserService handles account registration and lookup
type UserService struct {
	users  repositories.UserRepository
	txMgr  repositories.TransactionManager
	hasher PasswordHasher
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository, txMgr repositories.TransactionManager, hasher PasswordHasher, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		txMgr:  txMgr,
		hasher: hasher,
		logger: logger,
	}
}

// Register validates input, hashes the password and stores the account.
// The plaintext password is discarded once hashed.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if err := utils.ValidateStruct(&input); err != nil {
		return nil, validationError(err)
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(input.Name, input.Email, digest, models.UserRole(input.Role))

	return WithTransactionResult(ctx, s.txMgr, func(ctx context.Context, _ repositories.Transaction) (*models.User, error) {
		exists, err := s.users.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return nil, WrapInternal("failed to check email", err)
		}
		if exists {
			return nil, ErrDuplicateEmail
		}

		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				return nil, ErrDuplicateEmail
			}
			return nil, WrapInternal("failed to create user", err)
		}

		s.logger.Info("user registered",
			zap.String("user_id", user.ID.String()),
			zap.String("role", string(user.Role)))
		return user, nil
	})
}

// GetByEmail returns the account with this exact email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, WrapInternal("failed to get user", err)
	}
	return user, nil
}

// GetByID returns the account with this id
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, WrapInternal("failed to get user", err)
	}
	return user, nil
}

// validationError converts a validator failure into a validation DomainError with field details
func validationError(err error) error {
	domainErr := NewDomainError(ErrorTypeValidation, ErrInvalidInput.Message, err)
	for field, msg := range utils.GetValidationFields(err) {
		domainErr.WithDetail(field, msg)
	}
	return domainErr
}
