package user

// User is a registered storefront customer. Password holds the bcrypt hash;
// handlers only ever expose the first name, never the full record.
type User struct {
	ID        int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// LoginRecord is one append-only sign-in audit row. LogoutTime stays nil
// until the session ends.
type LoginRecord struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"user_firstname"`
	LastName   string  `json:"user_lastname"`
	Contact    string  `json:"contact"`
	Email      string  `json:"email"`
	LoginTime  string  `json:"login_time"`
	LogoutTime *string `json:"logout_time"`
}
