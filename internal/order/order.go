package order

// Status is the small state set an order moves through. Cancellation and
// delivery are both only reachable from "Order Placed"; no transition ever
// removes a row.
type Status string

const (
	StatusPlaced    Status = "Order Placed"
	StatusCancelled Status = "Cancelled"
	StatusDelivered Status = "Delivered"
)

var validNext = map[Status]map[Status]bool{
	StatusPlaced:    {StatusCancelled: true, StatusDelivered: true},
	StatusCancelled: {},
	StatusDelivered: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// ParseStatus reports whether s names a known status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPlaced, StatusCancelled, StatusDelivered:
		return Status(s), true
	}
	return "", false
}

// BillingInfo is the address snapshot frozen onto the order header. Later
// profile edits never touch placed orders.
type BillingInfo struct {
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`
	Address         string `json:"address"`
	City            string `json:"city"`
	StateProvince   string `json:"stateProvince"`
	PostalCode      string `json:"postalCode"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// LineItem is one product-quantity-price tuple belonging to exactly one
// order. Price is the cart price at submission time, not the current
// catalog price.
type LineItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Order is the header record plus its line items.
type Order struct {
	ID             int         `json:"orderId"`
	UserID         int         `json:"userId"`
	Billing        BillingInfo `json:"billingInfo"`
	PaymentMethod  string      `json:"paymentMethod"`
	Subtotal       float64     `json:"subtotal"`
	DeliveryFee    float64     `json:"delivery"`
	Total          float64     `json:"total"`
	TrackingNumber string      `json:"trackingNumber"`
	Status         Status      `json:"status"`
	IsRated        bool        `json:"isRated"`
	InSalesReport  bool        `json:"inSalesReport"`
	OrderDate      string      `json:"orderDate,omitempty"`
	Items          []LineItem  `json:"items,omitempty"`
}

// Tracking is the minimal projection the tracking page polls.
type Tracking struct {
	ID             int    `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Status         Status `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

// HistoryEntry is one row of the order-history page, with the line item
// names folded into a single display string.
type HistoryEntry struct {
	ID             int     `json:"id"`
	TrackingNumber string  `json:"trackingNumber"`
	Status         Status  `json:"status"`
	OrderDate      string  `json:"orderDate"`
	Total          float64 `json:"total"`
	IsRated        bool    `json:"isRated"`
	Products       string  `json:"products"`
}

// Summary is the compact per-user listing used by the all-orders endpoint.
type Summary struct {
	ID             int     `json:"id"`
	TrackingNumber string  `json:"trackingNumber"`
	Status         Status  `json:"status"`
	OrderDate      string  `json:"orderDate"`
	Total          float64 `json:"total"`
}
