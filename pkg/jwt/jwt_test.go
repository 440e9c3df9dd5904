package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/catalogo-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "catalogo-api-test"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

// clock reloj controlable; arranca en un segundo exacto porque exp/iat se truncan a segundos.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newManager(t *testing.T, secret string, c *clock) *pkgjwt.Manager {
	t.Helper()
	m, err := pkgjwt.NewManager(pkgjwt.Config{Secret: secret, TTL: time.Hour, Issuer: testIssuer}, pkgjwt.WithClock(c.Now))
	require.NoError(t, err)
	return m
}

func TestNewManager_SecretVacio(t *testing.T) {
	_, err := pkgjwt.NewManager(pkgjwt.Config{Secret: ""})
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}

func TestNewManager_TTLPorDefecto(t *testing.T) {
	m, err := pkgjwt.NewManager(pkgjwt.Config{Secret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, m.TTL())
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, testSecret, c)

	tok, err := m.Issue(pkgjwt.Identity{UserID: testUserID, Role: "admin"})
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.True(t, c.t.Equal(claims.IssuedAt.Time), "iat debe ser el instante de emisión")
	assert.True(t, c.t.Add(time.Hour).Equal(claims.ExpiresAt.Time), "exp debe ser iat + TTL")
}

func TestVerify_LimiteDeExpiracion(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: start}
	m := newManager(t, testSecret, c)

	tok, err := m.Issue(pkgjwt.Identity{UserID: testUserID, Role: "standard"})
	require.NoError(t, err)

	c.t = start.Add(time.Hour - time.Second)
	_, err = m.Verify(tok)
	require.NoError(t, err, "un segundo antes de exp el token sigue siendo válido")

	c.t = start.Add(time.Hour + time.Second)
	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenExpired)
}

func TestVerify_SecretDistinto(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	tok, err := newManager(t, testSecret, c).Issue(pkgjwt.Identity{UserID: testUserID, Role: "admin"})
	require.NoError(t, err)

	_, err = newManager(t, "otro-secret-completamente-distinto", c).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenSignatureInvalid)
}

func TestVerify_SecretDistintoYExpirado_ReportaFirma(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: start}
	tok, err := newManager(t, testSecret, c).Issue(pkgjwt.Identity{UserID: testUserID, Role: "admin"})
	require.NoError(t, err)

	c.t = start.Add(2 * time.Hour)
	_, err = newManager(t, "otro-secret", c).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenSignatureInvalid, "la firma se comprueba antes que los claims")
}

func TestVerify_PayloadAlterado(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, testSecret, c)

	standard, err := m.Issue(pkgjwt.Identity{UserID: testUserID, Role: "standard"})
	require.NoError(t, err)
	admin, err := m.Issue(pkgjwt.Identity{UserID: testUserID, Role: "admin"})
	require.NoError(t, err)

	// payload de admin con la firma del token standard
	sp := strings.Split(standard, ".")
	ap := strings.Split(admin, ".")
	forged := ap[0] + "." + ap[1] + "." + sp[2]

	_, err = m.Verify(forged)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenSignatureInvalid)
}

func TestVerify_AlgoritmoNone(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, testSecret, c)

	claims := pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: gojwt.NewNumericDate(c.t.Add(time.Hour)),
		},
		UserID: testUserID,
		Role:   "admin",
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenSignatureInvalid)
}

func TestVerify_Malformado(t *testing.T) {
	m := newManager(t, testSecret, &clock{t: time.Now()})

	for _, tok := range []string{"", "abc", "token.invalido.aqui"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, pkgjwt.ErrTokenMalformed, "token %q", tok)
	}
}

func TestVerify_EmisorDistinto(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	other, err := pkgjwt.NewManager(pkgjwt.Config{Secret: testSecret, Issuer: "otro"}, pkgjwt.WithClock(c.Now))
	require.NoError(t, err)
	tok, err := other.Issue(pkgjwt.Identity{UserID: testUserID, Role: "admin"})
	require.NoError(t, err)

	_, err = newManager(t, testSecret, c).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}

func TestVerify_SinUserID(t *testing.T) {
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, testSecret, c)
	tok, err := m.Issue(pkgjwt.Identity{Role: "admin"})
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrTokenInvalid)
}
