package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas (DIP).
// Las búsquedas devuelven (nil, nil) si no hay coincidencia.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error // ErrEmailAlreadyExists si el correo ya existe
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (bool, error) // false si el id no existe
	// UpdatePasswordHash cambia solo el hash y solo si el actual sigue siendo oldHash.
	// false si la cuenta no existe o el hash cambió entretanto.
	UpdatePasswordHash(ctx context.Context, id, oldHash, newHash string) (bool, error)
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error) // false si el id no existe
}
