package order

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrNotCancelable = errors.New("order cannot be cancelled")
)

// Repository defines persistence for orders and their line items.
// Create must be all-or-nothing: either the header and every line item are
// stored, or nothing is.
type Repository interface {
	Create(ord Order) (Order, error)
	GetDetail(orderID, userID int) (Order, error)
	GetTracking(orderID, userID int) (Tracking, error)
	History(userID int) ([]HistoryEntry, error)
	ListByUser(userID int) ([]Summary, error)
	Cancel(orderID, userID int) error

	GetStatus(orderID int) (Status, error)
	SetStatus(orderID int, from, to Status) error
	SetOrderDate(orderID int, date string) error
	ListInSalesReport() ([]Order, error)
	RemoveFromSalesReport(orderID int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int

	// FailCreate forces the next Create call to fail, standing in for a
	// mid-transaction SQL error.
	FailCreate error
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	repo := &InMemoryRepository{nextID: 1}
	maxID := 0
	for _, ord := range seed {
		repo.orders = append(repo.orders, ord)
		if ord.ID > maxID {
			maxID = ord.ID
		}
	}
	repo.nextID = maxID + 1
	return repo
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate != nil {
		return Order{}, r.FailCreate
	}
	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	if ord.OrderDate == "" {
		ord.OrderDate = time.Now().UTC().Format(time.RFC3339)
	}
	ord.InSalesReport = true
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetDetail(orderID, userID int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == orderID && ord.UserID == userID {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) GetTracking(orderID, userID int) (Tracking, error) {
	ord, err := r.GetDetail(orderID, userID)
	if err != nil {
		return Tracking{}, err
	}
	return Tracking{ID: ord.ID, TrackingNumber: ord.TrackingNumber, Status: ord.Status, CreatedAt: ord.OrderDate}, nil
}

func (r *InMemoryRepository) History(userID int) ([]HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]HistoryEntry, 0)
	for _, ord := range r.orders {
		if ord.UserID != userID {
			continue
		}
		names := make([]string, 0, len(ord.Items))
		for _, item := range ord.Items {
			names = append(names, item.Name)
		}
		out = append(out, HistoryEntry{
			ID:             ord.ID,
			TrackingNumber: ord.TrackingNumber,
			Status:         ord.Status,
			OrderDate:      ord.OrderDate,
			Total:          ord.Total,
			IsRated:        ord.IsRated,
			Products:       strings.Join(names, ", "),
		})
	}
	return out, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Summary, 0)
	for _, ord := range r.orders {
		if ord.UserID != userID {
			continue
		}
		out = append(out, Summary{ID: ord.ID, TrackingNumber: ord.TrackingNumber, Status: ord.Status, OrderDate: ord.OrderDate, Total: ord.Total})
	}
	return out, nil
}

func (r *InMemoryRepository) Cancel(orderID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.ID == orderID && ord.UserID == userID && ord.Status == StatusPlaced {
			r.orders[i].Status = StatusCancelled
			return nil
		}
	}
	return ErrNotCancelable
}

func (r *InMemoryRepository) GetStatus(orderID int) (Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ord := range r.orders {
		if ord.ID == orderID {
			return ord.Status, nil
		}
	}
	return "", ErrNotFound
}

func (r *InMemoryRepository) SetStatus(orderID int, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.ID == orderID && ord.Status == from {
			r.orders[i].Status = to
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetOrderDate(orderID int, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.ID == orderID {
			r.orders[i].OrderDate = date
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListInSalesReport() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, ord := range r.orders {
		if ord.InSalesReport {
			out = append(out, ord)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) RemoveFromSalesReport(orderID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, ord := range r.orders {
		if ord.ID == orderID && ord.InSalesReport {
			r.orders[i].InSalesReport = false
			return nil
		}
	}
	return ErrNotFound
}
