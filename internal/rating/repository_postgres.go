package rating

import (
	"database/sql"
	"sort"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	checkRatableQuery = `
		SELECT id FROM orders
		WHERE id = $1 AND user_id = $2 AND status = 'Delivered' AND is_rated = FALSE
	`
	orderProductsQuery = `SELECT product_id FROM ordered_products WHERE order_id = $1`
	insertRatingsQuery = `
		INSERT INTO product_ratings (order_id, product_id, rating)
		SELECT $1, unnest($2::bigint[]), unnest($3::bigint[])
	`
	insertFeedbackQuery = `INSERT INTO order_feedback (order_id, feedback) VALUES ($1,$2)`
	markRatedQuery      = `UPDATE orders SET is_rated = TRUE WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) OrderProducts(orderID, userID int) ([]int, error) {
	var id int
	err := r.db.QueryRow(checkRatableQuery, orderID, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, ErrNotRatable
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(orderProductsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			return nil, err
		}
		out = append(out, productID)
	}
	return out, rows.Err()
}

// Submit writes the ratings, the feedback row and the rated flag inside one
// transaction so a crash can never leave ratings without feedback or
// without the flag update.
func (r *PostgresRepository) Submit(sub Submission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	productIDs := make([]int64, 0, len(sub.Ratings))
	for productID := range sub.Ratings {
		productIDs = append(productIDs, int64(productID))
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })
	values := make([]int64, len(productIDs))
	for i, productID := range productIDs {
		values[i] = int64(sub.Ratings[int(productID)])
	}
	if _, err := tx.Exec(insertRatingsQuery, sub.OrderID, pq.Array(productIDs), pq.Array(values)); err != nil {
		return err
	}
	if _, err := tx.Exec(insertFeedbackQuery, sub.OrderID, sub.Feedback); err != nil {
		return err
	}
	if _, err := tx.Exec(markRatedQuery, sub.OrderID); err != nil {
		return err
	}
	return tx.Commit()
}
