package auth

import (
	"strings"

	"github.com/olegamobile/lets-play/models"
)

// Role is the single role string stored on a user
type Role string

const (
	RoleAdmin Role = Role(models.RoleAdmin)
	RoleUser  Role = Role(models.RoleUser)
)

// Authorities maps the role to its granted authorities.
// An empty role grants nothing.
func (r Role) Authorities() []string {
	if r == "" {
		return []string{}
	}
	return []string{"ROLE_" + strings.ToUpper(string(r))}
}

