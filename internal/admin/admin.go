package admin

// Admin is a back-office account. Password holds the bcrypt hash and never
// serializes.
type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
