package product

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Service provides catalog logic shared by the storefront and the admin
// back-office.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) ListByCategory(category string) ([]Product, error) {
	return s.repo.ListByCategory(category)
}

func (s *Service) ListLimited() ([]Product, error) {
	return s.repo.ListByCategory(LimitedCategory)
}

func (s *Service) Categories() ([]Category, error) {
	return s.repo.Categories()
}

// ListPage returns one admin catalog page. Page numbers start at 1.
func (s *Service) ListPage(page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.repo.ListPage(limit, (page-1)*limit)
	if err != nil {
		return Page{}, err
	}

	totalPages := (total + limit - 1) / limit
	return Page{
		Products:    products,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	p.ReferenceCode = newReferenceCode()
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) error {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

const referenceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newReferenceCode builds the supplier-facing code stamped on new products:
// "ORD-" followed by nine uppercased base36 characters.
func newReferenceCode() string {
	var b strings.Builder
	b.WriteString("ORD-")
	for i := 0; i < 9; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referenceAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			n = big.NewInt(int64(i))
		}
		b.WriteByte(referenceAlphabet[n.Int64()])
	}
	return strings.ToUpper(b.String())
}
