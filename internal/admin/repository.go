package admin

import (
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPIN         = errors.New("invalid pin")
)

// Repository defines persistence for back-office accounts.
type Repository interface {
	GetByUsername(username string) (Admin, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	admins []Admin
}

func NewInMemoryRepository(seed []Admin) *InMemoryRepository {
	repo := &InMemoryRepository{}
	repo.admins = append(repo.admins, seed...)
	return repo
}

func (r *InMemoryRepository) GetByUsername(username string) (Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}
