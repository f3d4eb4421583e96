package rating

import "errors"

var (
	ErrNoRatings      = errors.New("no ratings submitted")
	ErrUnknownProduct = errors.New("rating references a product not in the order")
	ErrInvalidValue   = errors.New("rating value out of range")
)

// Service provides the rating submission logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates the submission against the order's line items and stores
// it. Ratings for products that were never part of the order are rejected
// outright rather than silently skipped.
func (s *Service) Submit(sub Submission) error {
	if len(sub.Ratings) == 0 {
		return ErrNoRatings
	}
	for _, value := range sub.Ratings {
		if value < 1 || value > 5 {
			return ErrInvalidValue
		}
	}

	productIDs, err := s.repo.OrderProducts(sub.OrderID, sub.UserID)
	if err != nil {
		return err
	}

	ordered := make(map[int]bool, len(productIDs))
	for _, id := range productIDs {
		ordered[id] = true
	}
	for productID := range sub.Ratings {
		if !ordered[productID] {
			return ErrUnknownProduct
		}
	}

	return s.repo.Submit(sub)
}
