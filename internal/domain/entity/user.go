package entity

import (
	"strings"
	"time"
)

// User representa una cuenta del sistema. Email es único entre todas las cuentas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt; ningún DTO de salida lo expone
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail forma canónica del correo usada al guardar y al buscar.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
