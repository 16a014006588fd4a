package services

import (
	"context"
	"errors"

	"github.com/olegamobile/lets-play/internal/auth"
	"github.com/olegamobile/lets-play/models"
	"github.com/olegamobile/lets-play/repositories"
	"go.uber.org/zap"
)

// CredentialStore is the lookup the authenticator needs from the user store
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticator verifies login credentials against the credential store
type Authenticator struct {
	store     CredentialStore
	hasher    PasswordHasher
	dummyHash string
	logger    *zap.Logger
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(store CredentialStore, hasher PasswordHasher, logger *zap.Logger) *Authenticator {
	a := &Authenticator{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
	// compared against when the email is unknown so both failure paths do the same work
	if digest, err := hasher.Hash("lets-play-timing-equalizer"); err == nil {
		a.dummyHash = digest
	}
	return a
}

// Authenticate checks email and password and returns the matching principal.
// Unknown email and wrong password both yield ErrInvalidCredentials; the unknown
// email case additionally wraps ErrUserNotFound.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*auth.Principal, error) {
	user, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			a.hasher.Verify(password, a.dummyHash)
			a.logger.Debug("login rejected: unknown email")
			return nil, NewDomainError(ErrorTypeUnauthorized, ErrInvalidCredentials.Message, ErrUserNotFound)
		}
		a.logger.Error("credential lookup failed", zap.Error(err))
		return nil, WrapInternal("failed to load credentials", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Debug("login rejected: password mismatch", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	a.logger.Info("user authenticated", zap.String("user_id", user.ID.String()))
	return auth.NewPrincipal(user), nil
}
