package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// UserUseCase casos de uso de cuentas. Toda mutación se autoriza antes de tocar el repositorio.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
	now    func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, now: time.Now}
}

// List devuelve todas las cuentas sin hash.
func (uc *UserUseCase) List(ctx context.Context, actor entity.Role) ([]dto.UserResponse, error) {
	if !authz.CanPerform(actor, authz.ReadAccount) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// Create hashea el password y persiste la cuenta. ErrEmailAlreadyExists si el correo ya existe.
func (uc *UserUseCase) Create(ctx context.Context, actor entity.Role, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !authz.CanPerform(actor, authz.CreateAccount) {
		return nil, domain.ErrForbidden
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        entity.NormalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial. Sin password nuevo el hash existente se conserva.
func (uc *UserUseCase) Update(ctx context.Context, actor entity.Role, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !authz.CanPerform(actor, authz.UpdateAccount) {
		return nil, domain.ErrForbidden
	}
	var role entity.Role
	if in.Role != nil {
		r, err := entity.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		user.Email = entity.NormalizeEmail(*in.Email)
	}
	if in.Role != nil {
		user.Role = role
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = uc.now()
	found, err := uc.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Delete elimina una cuenta. ErrNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, actor entity.Role, id string) error {
	if !authz.CanPerform(actor, authz.DeleteAccount) {
		return domain.ErrForbidden
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
