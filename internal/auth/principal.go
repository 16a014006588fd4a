package auth

import (
	"github.com/google/uuid"
	"github.com/olegamobile/lets-play/models"
)

// Principal is the authenticated user. It never carries the password hash.
type Principal struct {
	UserID  uuid.UUID
	Subject string // email, also the JWT subject
	Name    string
	Role    Role
}

// NewPrincipal builds a Principal from a stored user
func NewPrincipal(user *models.User) *Principal {
	return &Principal{
		UserID:  user.ID,
		Subject: user.Email,
		Name:    user.Name,
		Role:    Role(user.Role),
	}
}

// AuthenticatedContext is the identity attached to a single request
type AuthenticatedContext struct {
	Principal   *Principal
	Authorities []string
}

// NewAuthenticatedContext derives the granted authorities from the principal's role
func NewAuthenticatedContext(p *Principal) *AuthenticatedContext {
	return &AuthenticatedContext{
		Principal:   p,
		Authorities: p.Role.Authorities(),
	}
}

// HasAuthority reports whether the authority was granted
func (a *AuthenticatedContext) HasAuthority(authority string) bool {
	if a == nil {
		return false
	}
	for _, granted := range a.Authorities {
		if granted == authority {
			return true
		}
	}
	return false
}
