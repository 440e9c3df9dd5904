package entity

import (
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Role conjunto cerrado de roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Roles lista de todos los roles definidos.
func Roles() []Role {
	return []Role{RoleAdmin, RoleStandard}
}

// Valid indica si r pertenece al conjunto de roles definidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStandard:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole convierte un string externo en Role; cualquier valor fuera del conjunto es ErrInvalidRole.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", domain.ErrInvalidRole
	}
	return r, nil
}
