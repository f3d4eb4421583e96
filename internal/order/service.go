package order

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidUser       = errors.New("invalid user")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Service provides order business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place creates the order: it stamps the tracking number and initial
// status, then hands the header plus line items to the repository for the
// all-or-nothing insert. An empty cart is rejected before any database
// work.
func (s *Service) Place(ord Order) (Order, error) {
	if ord.UserID <= 0 {
		return Order{}, ErrInvalidUser
	}
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	tracking, err := NewTrackingNumber()
	if err != nil {
		return Order{}, err
	}
	ord.TrackingNumber = tracking
	ord.Status = StatusPlaced

	return s.repo.Create(ord)
}

func (s *Service) GetDetail(orderID, userID int) (Order, error) {
	return s.repo.GetDetail(orderID, userID)
}

func (s *Service) GetTracking(orderID, userID int) (Tracking, error) {
	return s.repo.GetTracking(orderID, userID)
}

func (s *Service) History(userID int) ([]HistoryEntry, error) {
	return s.repo.History(userID)
}

func (s *Service) ListByUser(userID int) ([]Summary, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Cancel(orderID, userID int) error {
	return s.repo.Cancel(orderID, userID)
}

// Transition moves an order to a new status on behalf of the back-office,
// enforcing the state set: only "Order Placed" orders may become Delivered
// or Cancelled.
func (s *Service) Transition(orderID int, to Status) error {
	current, err := s.repo.GetStatus(orderID)
	if err != nil {
		return err
	}
	if !CanTransition(current, to) {
		return ErrInvalidTransition
	}
	return s.repo.SetStatus(orderID, current, to)
}

func (s *Service) SetOrderDate(orderID int, date string) error {
	return s.repo.SetOrderDate(orderID, date)
}

func (s *Service) ListInSalesReport() ([]Order, error) {
	return s.repo.ListInSalesReport()
}

func (s *Service) RemoveFromSalesReport(orderID int) error {
	return s.repo.RemoveFromSalesReport(orderID)
}
