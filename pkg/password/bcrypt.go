// Package password hashea y verifica contraseñas con bcrypt.
//
// El hash resultante usa el formato modular $2a$<cost>$<salt+hash>, que guarda su propio
// factor de trabajo: subir el costo no invalida los hashes ya almacenados.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost factor de trabajo si no se configura otro.
const DefaultCost = 12

// ErrEmptyPassword se devuelve al intentar hashear una contraseña vacía.
var ErrEmptyPassword = errors.New("password: contraseña vacía")

// Hasher aplica bcrypt con un costo fijo. Inmutable y seguro para uso concurrente.
type Hasher struct {
	cost int
}

// NewHasher construye el hasher; el costo se acota a [bcrypt.MinCost, bcrypt.MaxCost]
// y 0 significa DefaultCost.
func NewHasher(cost int) *Hasher {
	switch {
	case cost == 0:
		cost = DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost factor de trabajo usado para hashes nuevos.
func (h *Hasher) Cost() int { return h.cost }

// Hash genera un hash con sal aleatoria por llamada.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hashear: %w", err)
	}
	return string(b), nil
}

// Verify compara en tiempo constante; una discrepancia o un hash corrupto es false, nunca error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	if plaintext == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// NeedsRehash indica si el hash se generó con un costo menor al actual.
func (h *Hasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false
	}
	return cost < h.cost
}
