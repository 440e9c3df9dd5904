package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// dummyPassword se hashea una vez al construir el caso de uso para comparar contra algo
// cuando el correo no existe y así igualar el tiempo de respuesta.
const dummyPassword = "catalogo-api/login/cuenta-inexistente"

// fallbackDummyHash hash bcrypt válido (costo 12) para cuando no se puede calcular el propio.
const fallbackDummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthUseCase login: verifica credenciales y emite el token de sesión.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	log       *logger.Logger
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil || dummy == "" {
		log.Error().Err(err).Msg("hash de comparación para login; se usa el hash fijo")
		dummy = fallbackDummyHash
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		log:       log,
		dummyHash: dummy,
	}
}

// Login verifica correo/password y devuelve token + rol. Correo inexistente y password
// incorrecto producen el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("login: buscar cuenta: %w", err)
	}
	if user == nil {
		uc.hasher.Verify(in.Password, uc.dummyHash)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Role.Valid() {
		// un rol corrupto en la base no debe terminar en un token
		uc.log.Error().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("cuenta con rol inválido")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(pkgjwt.Identity{UserID: user.ID, Role: user.Role.String()})
	if err != nil {
		return nil, fmt.Errorf("login: emitir token: %w", err)
	}

	if uc.hasher.NeedsRehash(user.PasswordHash) {
		uc.rehash(ctx, user, in.Password)
	}

	return &dto.LoginResponse{Token: token, Role: user.Role.String()}, nil
}

// rehash actualiza un hash con costo antiguo; un fallo aquí no invalida el login.
// Solo escribe el hash y solo si nadie lo cambió desde la lectura: el resto de la
// cuenta (rol, correo) puede haber sido modificado por un admin durante el login.
func (uc *AuthUseCase) rehash(ctx context.Context, user *entity.User, plaintext string) {
	hash, err := uc.hasher.Hash(plaintext)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("rehash de password")
		return
	}
	swapped, err := uc.userRepo.UpdatePasswordHash(ctx, user.ID, user.PasswordHash, hash)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("guardar rehash de password")
		return
	}
	if !swapped {
		uc.log.Debug().Str("user_id", user.ID).Msg("rehash descartado: la cuenta cambió durante el login")
	}
}
