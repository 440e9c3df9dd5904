package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// memUsers repositorio de cuentas en memoria. Guarda copias para que los handlers
// no puedan mutar el estado sin pasar por el repositorio.
type memUsers struct {
	mu    sync.Mutex
	byID  map[string]entity.User
	calls int
	fail  error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[string]entity.User{}}
}

func (r *memUsers) enter() error {
	r.calls++
	return r.fail
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
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
	if err := r.enter(); err != nil {
		return false, err
	}
	if _, ok := r.byID[u.ID]; !ok {
		return false, nil
	}
	for id, existing := range r.byID {
		if id != u.ID && existing.Email == u.Email {
			return false, domain.ErrEmailAlreadyExists
		}
	}
	r.byID[u.ID] = *u
	return true, nil
}

func (r *memUsers) UpdatePasswordHash(_ context.Context, id, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return false, err
	}
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
	if err := r.enter(); err != nil {
		return nil, err
	}
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
	if err := r.enter(); err != nil {
		return false, err
	}
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// seed inserta sin contar como llamada del sistema bajo prueba.
func (r *memUsers) seed(u entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID] = u
}

func (r *memUsers) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byID[id]
	return ok
}

func (r *memUsers) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *memUsers) failWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// memProducts repositorio de productos en memoria.
type memProducts struct {
	mu    sync.Mutex
	byID  map[string]entity.Product
	calls int
	fail  error
}

func newMemProducts() *memProducts {
	return &memProducts{byID: map[string]entity.Product{}}
}

func (r *memProducts) enter() error {
	r.calls++
	return r.fail
}

func (r *memProducts) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProducts) Update(_ context.Context, p *entity.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return false, err
	}
	if _, ok := r.byID[p.ID]; !ok {
		return false, nil
	}
	r.byID[p.ID] = *p
	return true, nil
}

func (r *memProducts) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		c := p
		out = append(out, &c)
	}
	return out, nil
}

func (r *memProducts) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return false, err
	}
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *memProducts) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

func (r *memProducts) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *memProducts) failWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}
