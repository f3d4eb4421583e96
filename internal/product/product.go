package product

// Product is one catalog entry. JSON tags follow the column names both
// frontends already consume.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
	SupplierID    int     `json:"supplier_id"`
	ReferenceCode string  `json:"reference_code,omitempty"`
	Rating        float64 `json:"rating"`
}

// Category is the {id, name} pair the storefront category strip renders.
// Both fields carry the category name; there is no separate category table.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Page is one page of the admin product table.
type Page struct {
	Products    []Product `json:"products"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	TotalItems  int       `json:"totalItems"`
}

// LimitedCategory marks limited-run items; it is excluded from the regular
// category listing and served by its own endpoint.
const LimitedCategory = "Limited"
