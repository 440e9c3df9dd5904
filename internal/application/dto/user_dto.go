package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const minPasswordLength = 8

// CreateUserRequest entrada para crear una cuenta (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"`
	Role     string `json:"rol"`
}

// Validate reglas de formato; el rol se valida contra el conjunto cerrado en el caso de uso.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLength, 72)),
		validation.Field(&r.Role, validation.Required),
	)
}

// UpdateUserRequest actualización parcial: los campos nil no se tocan.
type UpdateUserRequest struct {
	Name     *string `json:"nombre"`
	Email    *string `json:"correo"`
	Password *string `json:"password"`
	Role     *string `json:"rol"`
}

// Validate reglas de formato para los campos presentes.
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(minPasswordLength, 72)),
		validation.Field(&r.Role, validation.NilOrNotEmpty),
	)
}

// UserResponse salida de una cuenta. No tiene campo de password ni de hash.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

// Validate ambos campos son obligatorios.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse solo token y rol: nunca el id interno ni el hash.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"rol"`
}
