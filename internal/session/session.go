package session

// CartItem is one entry of the in-progress cart held on the session.
// Price is whatever the storefront showed when the item was added; order
// placement copies it into the line item rather than re-reading the catalog.
type CartItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Session is the server-held state behind one storefront cookie. It carries
// the authenticated user reference, the id of the login audit row created at
// sign-in, and the cart.
type Session struct {
	ID        string     `json:"id"`
	UserID    int        `json:"userId"`
	FirstName string     `json:"firstName"`
	Email     string     `json:"email"`
	LoginID   int        `json:"loginId"`
	Cart      []CartItem `json:"cart"`
}
