package report

// Repository defines the read-only aggregation queries behind the admin
// dashboard.
type Repository interface {
	SalesData(frame TimeFrame) (SalesData, error)
	TotalProducts() (int, error)
	TopProducts(limit int) ([]TopProduct, error)
	RatedProductsCount(frame TimeFrame) (int, error)
	LoginEntries() ([]LoginEntry, error)
}
