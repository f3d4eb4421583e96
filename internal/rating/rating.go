package rating

// Submission is one customer rating pass over a delivered order: a rating
// value per product plus one free-text feedback row.
type Submission struct {
	OrderID  int
	UserID   int
	Ratings  map[int]int
	Feedback string
}
