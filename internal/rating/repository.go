package rating

import (
	"errors"
	"sync"
)

var (
	// ErrNotRatable covers every precondition failure the caller may not
	// distinguish: order absent, owned by someone else, not yet delivered,
	// or already rated.
	ErrNotRatable = errors.New("order cannot be rated")
)

// Repository defines persistence for ratings and feedback.
type Repository interface {
	// OrderProducts returns the product ids on the order's line items,
	// but only when the order belongs to userID, is Delivered and has not
	// been rated yet.
	OrderProducts(orderID, userID int) ([]int, error)
	// Submit stores the ratings and feedback and flips the order's rated
	// flag, all or nothing.
	Submit(sub Submission) error
}

// ratableOrder seeds the in-memory repository for tests.
type ratableOrder struct {
	OrderID    int
	UserID     int
	Delivered  bool
	Rated      bool
	ProductIDs []int
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []ratableOrder

	Submissions []Submission
}

// NewInMemoryRepository seeds one ratable-order entry per argument triple.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// AddOrder registers an order the repository should know about.
func (r *InMemoryRepository) AddOrder(orderID, userID int, delivered, rated bool, productIDs []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, ratableOrder{OrderID: orderID, UserID: userID, Delivered: delivered, Rated: rated, ProductIDs: productIDs})
}

func (r *InMemoryRepository) OrderProducts(orderID, userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.OrderID == orderID && ord.UserID == userID && ord.Delivered && !ord.Rated {
			out := make([]int, len(ord.ProductIDs))
			copy(out, ord.ProductIDs)
			return out, nil
		}
	}
	return nil, ErrNotRatable
}

func (r *InMemoryRepository) Submit(sub Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.OrderID == sub.OrderID {
			r.orders[i].Rated = true
		}
	}
	r.Submissions = append(r.Submissions, sub)
	return nil
}
