package product

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Repository defines persistence for catalog entries.
type Repository interface {
	List() ([]Product, error)
	ListByCategory(category string) ([]Product, error)
	ListPage(limit, offset int) ([]Product, int, error)
	Categories() ([]Category, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) error
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products []Product
	nextID   int
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	repo := &InMemoryRepository{nextID: 1}
	maxID := 0
	for _, p := range seed {
		repo.products = append(repo.products, p)
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(category string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListPage(limit, offset int) ([]Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := len(r.products)
	if offset >= total {
		return []Product{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]Product, end-offset)
	copy(out, r.products[offset:end])
	return out, total, nil
}

func (r *InMemoryRepository) Categories() ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	out := make([]Category, 0)
	for _, p := range r.products {
		if p.Category == LimitedCategory || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, Category{ID: p.Category, Name: p.Category})
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, update Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			update.ID = id
			update.ReferenceCode = p.ReferenceCode
			r.products[i] = update
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
