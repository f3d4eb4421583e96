package database

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects to Postgres through the pgx stdlib driver and verifies the
// connection with a ping.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates every table the shop and admin services rely on.
// The schema is fixed: handlers never probe information_schema at request
// time to decide which query to run.
func EnsureSchema(db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS registered_users (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		address TEXT NOT NULL,
		contact TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS user_login (
		id SERIAL PRIMARY KEY,
		user_first_name TEXT NOT NULL,
		user_last_name TEXT NOT NULL,
		contact TEXT,
		email TEXT NOT NULL,
		login_time TIMESTAMPTZ NOT NULL DEFAULT now(),
		logout_time TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL DEFAULT 0,
		image_url TEXT,
		stock_quantity INT NOT NULL DEFAULT 0,
		category TEXT,
		supplier_id INT,
		reference_code TEXT,
		rating NUMERIC NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INT NOT NULL REFERENCES registered_users(id),
		full_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT,
		state_province TEXT,
		postal_code TEXT,
		delivery_address TEXT,
		payment_method TEXT NOT NULL,
		subtotal NUMERIC NOT NULL,
		delivery_fee NUMERIC NOT NULL,
		total NUMERIC NOT NULL,
		tracking_number TEXT NOT NULL,
		status TEXT NOT NULL,
		is_rated BOOLEAN NOT NULL DEFAULT FALSE,
		in_sales_report BOOLEAN NOT NULL DEFAULT TRUE,
		order_date TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS ordered_products (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id),
		product_id INT NOT NULL,
		name TEXT NOT NULL,
		quantity INT NOT NULL,
		price NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_ratings (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id),
		product_id INT NOT NULL,
		rating INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS order_feedback (
		id SERIAL PRIMARY KEY,
		order_id INT NOT NULL REFERENCES orders(id),
		feedback TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ordered_products_order_id ON ordered_products (order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_product_ratings_product_id ON product_ratings (product_id)`,
}
