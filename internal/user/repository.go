package user

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

// Repository defines persistence for customers and their login audit rows.
type Repository interface {
	Create(u User) (User, error)
	GetByEmail(email string) (User, error)
	GetByID(id int) (User, error)
	RecordLogin(u User, at time.Time) (int, error)
	RecordLogout(loginID int, at time.Time) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu          sync.RWMutex
	users       []User
	logins      []LoginRecord
	nextID      int
	nextLoginID int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{nextID: 1, nextLoginID: 1}
	maxID := 0
	for _, u := range seed {
		repo.users = append(repo.users, u)
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return User{}, ErrEmailExists
		}
	}
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) RecordLogin(u User, at time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := LoginRecord{
		ID:        r.nextLoginID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Contact:   u.Contact,
		Email:     u.Email,
		LoginTime: at.UTC().Format(time.RFC3339),
	}
	r.nextLoginID++
	r.logins = append(r.logins, rec)
	return rec.ID, nil
}

func (r *InMemoryRepository) RecordLogout(loginID int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.logins {
		if rec.ID == loginID {
			t := at.UTC().Format(time.RFC3339)
			rec.LogoutTime = &t
			r.logins[i] = rec
			return nil
		}
	}
	return ErrNotFound
}
