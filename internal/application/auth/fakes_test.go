package auth_test

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// memUsers repositorio en memoria con estado; devuelve copias como lo haría la base.
type memUsers struct {
	mu   sync.Mutex
	byID map[string]entity.User
}

func newMemUsers(users ...entity.User) *memUsers {
	r := &memUsers{byID: map[string]entity.User{}}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Update(_ context.Context, u *entity.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return false, nil
	}
	r.byID[u.ID] = *u
	return true, nil
}

func (r *memUsers) UpdatePasswordHash(_ context.Context, id, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok || u.PasswordHash != oldHash {
		return false, nil
	}
	u.PasswordHash = newHash
	r.byID[id] = u
	return true, nil
}

func (r *memUsers) List(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		c := u
		out = append(out, &c)
	}
	return out, nil
}

func (r *memUsers) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *memUsers) stored(id string) entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id]
}

// hookHasher ejecuta onVerify una vez dentro de Verify, en la ventana entre la
// lectura de la cuenta y la escritura del rehash.
type hookHasher struct {
	ports.PasswordHasher
	onVerify func()
}

func (h *hookHasher) Verify(plaintext, hash string) bool {
	ok := h.PasswordHasher.Verify(plaintext, hash)
	if h.onVerify != nil {
		h.onVerify()
		h.onVerify = nil
	}
	return ok
}

// failingHasher Hash siempre falla; registra los hashes recibidos en Verify.
type failingHasher struct {
	err      error
	verified []string
}

func (h *failingHasher) Hash(string) (string, error) { return "", h.err }

func (h *failingHasher) Verify(_, hash string) bool {
	h.verified = append(h.verified, hash)
	return false
}

func (h *failingHasher) NeedsRehash(string) bool { return false }
