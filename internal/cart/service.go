package cart

import (
	"context"

	"github.com/nars-shop/nars-backend/internal/session"
)

// Service owns the cart aggregate stored on the session record. Handlers
// pass the loaded session in explicitly; every mutation is written back to
// the store before a response goes out.
type Service struct {
	sessions session.Store
}

func NewService(sessions session.Store) *Service {
	return &Service{sessions: sessions}
}

func (s *Service) Add(ctx context.Context, sess session.Session, item session.CartItem) (session.Session, error) {
	sess.Cart = append(sess.Cart, item)
	if err := s.sessions.Put(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// UpdateQuantity sets the quantity for every cart entry matching the
// product id. Unknown ids leave the cart unchanged, mirroring the
// storefront's map-over-items behaviour.
func (s *Service) UpdateQuantity(ctx context.Context, sess session.Session, productID, quantity int) (session.Session, error) {
	for i, item := range sess.Cart {
		if item.ProductID == productID {
			sess.Cart[i].Quantity = quantity
		}
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

func (s *Service) Remove(ctx context.Context, sess session.Session, productID int) (session.Session, error) {
	kept := sess.Cart[:0]
	for _, item := range sess.Cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	sess.Cart = kept
	if err := s.sessions.Put(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// Clear empties the cart after a successful checkout.
func (s *Service) Clear(ctx context.Context, sess session.Session) (session.Session, error) {
	sess.Cart = nil
	if err := s.sessions.Put(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}
