package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia por defecto de un token de sesión.
const DefaultTTL = time.Hour

// Errores de verificación. Son distinguibles con errors.Is para diagnóstico interno;
// la capa HTTP los presenta todos con la misma respuesta.
var (
	ErrEmptySecret           = errors.New("jwt: secret vacío")
	ErrTokenMalformed        = errors.New("jwt: token mal formado")
	ErrTokenSignatureInvalid = errors.New("jwt: firma inválida")
	ErrTokenExpired          = errors.New("jwt: token expirado")
	ErrTokenInvalid          = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más la identidad de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"rol"`
}

// Identity lo que el token afirma sobre quien lo porta.
type Identity struct {
	UserID string
	Role   string
}

// Config parámetros del emisor/verificador.
type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// Option personaliza el Manager.
type Option func(*Manager)

// WithClock reemplaza el reloj usado al emitir y al verificar.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager emite y verifica tokens HS256 con un secreto de proceso. Es inmutable tras
// construirse y seguro para uso concurrente.
type Manager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager construye el Manager; falla si el secreto está vacío.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// TTL vigencia aplicada a los tokens emitidos.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue genera un token firmado con userID y rol; iat y exp quedan fijos en la emisión.
func (m *Manager) Issue(id Identity) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: id.UserID,
		Role:   id.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, nil
}

// Verify valida firma, algoritmo, emisor y expiración, en ese orden, y devuelve los claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
}
