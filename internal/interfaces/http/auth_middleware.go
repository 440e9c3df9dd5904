package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/authz"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// Locals keys para la identidad autenticada en Fiber. Viven solo durante la petición.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

var (
	errMissingToken = errors.New("auth: falta el header Authorization")
	errBadScheme    = errors.New("auth: esquema distinto de Bearer")
	errUnknownRole  = errors.New("auth: rol del token fuera del conjunto definido")
)

// unauthorizedBody única respuesta para cualquier fallo de autenticación: no revela qué comprobación falló.
var unauthorizedBody = dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida o token inválido"}

// AuthMiddleware valida el Bearer Token y guarda UserID y Role en c.Locals.
// Cualquier fallo responde 401 sin llegar al handler.
func AuthMiddleware(verifier ports.TokenVerifier, log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return rejectAuth(c, log, err)
		}
		claims, err := verifier.Verify(token)
		if err != nil {
			return rejectAuth(c, log, err)
		}
		role := entity.Role(claims.Role)
		if !role.Valid() {
			return rejectAuth(c, log, errUnknownRole)
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireAction consulta la política de autorización. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAction(action authz.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(unauthorizedBody)
		}
		if !authz.CanPerform(role, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "solo los administradores pueden realizar esta operación",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del contexto; vacío si la petición no pasó por AuthMiddleware.
func GetRole(c *fiber.Ctx) entity.Role {
	r, _ := c.Locals(LocalRole).(entity.Role)
	return r
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errBadScheme
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func rejectAuth(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Warn().
		Str("reason", authFailureKind(err)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("ip", c.IP()).
		Msg("autenticación rechazada")
	return c.Status(fiber.StatusUnauthorized).JSON(unauthorizedBody)
}

// authFailureKind solo para diagnóstico interno.
func authFailureKind(err error) string {
	switch {
	case errors.Is(err, errMissingToken):
		return "missing_token"
	case errors.Is(err, errBadScheme), errors.Is(err, pkgjwt.ErrTokenMalformed):
		return "token_malformed"
	case errors.Is(err, pkgjwt.ErrTokenSignatureInvalid):
		return "token_signature_invalid"
	case errors.Is(err, pkgjwt.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, errUnknownRole):
		return "token_unknown_role"
	default:
		return "token_invalid"
	}
}
