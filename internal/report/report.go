package report

// TimeFrame selects the window the dashboard aggregates over. Anything
// unrecognised falls back to today.
type TimeFrame string

const (
	FrameToday     TimeFrame = "today"
	FrameYesterday TimeFrame = "yesterday"
	FrameLastWeek  TimeFrame = "lastWeek"
	FrameLastMonth TimeFrame = "lastMonth"
)

// SalesData is the dashboard headline block.
type SalesData struct {
	PeriodSales    float64 `json:"periodSales"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
}

// TopProduct is one row of the best-sellers widget.
type TopProduct struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Rating   float64 `json:"rating"`
	Sold     int     `json:"sold"`
}

// LoginEntry mirrors one user_login audit row for the sales-report table.
type LoginEntry struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"user_firstname"`
	LastName   string  `json:"user_lastname"`
	Contact    string  `json:"contact"`
	Email      string  `json:"email"`
	LoginTime  string  `json:"login_time"`
	LogoutTime *string `json:"logout_time"`
}
