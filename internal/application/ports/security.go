package ports

import pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"

// PasswordHasher hash unidireccional con sal; lo implementa *password.Hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
	NeedsRehash(hash string) bool
}

// TokenIssuer emite tokens de sesión; lo implementa *jwt.Manager.
type TokenIssuer interface {
	Issue(id pkgjwt.Identity) (string, error)
}

// TokenVerifier valida tokens de sesión; lo implementa *jwt.Manager.
type TokenVerifier interface {
	Verify(token string) (*pkgjwt.Claims, error)
}
