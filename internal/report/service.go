package report

// topProductsLimit caps the best-sellers widget.
const topProductsLimit = 5

// Service provides the dashboard aggregates.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) SalesData(frame TimeFrame) (SalesData, error) {
	return s.repo.SalesData(frame)
}

func (s *Service) TotalProducts() (int, error) {
	return s.repo.TotalProducts()
}

func (s *Service) TopProducts() ([]TopProduct, error) {
	return s.repo.TopProducts(topProductsLimit)
}

func (s *Service) RatedProductsCount(frame TimeFrame) (int, error) {
	return s.repo.RatedProductsCount(frame)
}

func (s *Service) LoginEntries() ([]LoginEntry, error) {
	return s.repo.LoginEntries()
}
