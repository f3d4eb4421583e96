package report

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	salesDataQuery = `
		SELECT COALESCE(SUM(total), 0), COUNT(*), COUNT(DISTINCT user_id)
		FROM orders
		WHERE order_date::date BETWEEN $1 AND $2
	`
	totalProductsQuery = `SELECT COUNT(*) FROM products`
	topProductsQuery   = `
		SELECT p.id, p.name, COALESCE(p.image_url, ''), p.rating, COALESCE(SUM(op.quantity), 0) AS sold
		FROM products p
		LEFT JOIN ordered_products op ON p.id = op.product_id
		GROUP BY p.id
		ORDER BY sold DESC, p.rating DESC
		LIMIT $1
	`
	ratedProductsQuery = `
		SELECT COUNT(DISTINCT product_id)
		FROM product_ratings
		WHERE created_at::date BETWEEN $1 AND $2
	`
	loginEntriesQuery = `
		SELECT id, user_first_name, user_last_name, COALESCE(contact, ''), email, login_time, logout_time
		FROM user_login
		ORDER BY login_time DESC
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// window translates a time frame into an inclusive [from, to] date pair,
// relative to the current day.
func window(frame TimeFrame) (time.Time, time.Time) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	switch frame {
	case FrameYesterday:
		return today.AddDate(0, 0, -1), today.AddDate(0, 0, -1)
	case FrameLastWeek:
		return today.AddDate(0, 0, -7), today.AddDate(0, 0, -1)
	case FrameLastMonth:
		return today.AddDate(0, -1, 0), today.AddDate(0, 0, -1)
	default:
		return today, today
	}
}

func (r *PostgresRepository) SalesData(frame TimeFrame) (SalesData, error) {
	from, to := window(frame)
	var data SalesData
	err := r.db.QueryRow(salesDataQuery, from, to).Scan(&data.PeriodSales, &data.TotalOrders, &data.TotalCustomers)
	if err != nil {
		return SalesData{}, err
	}
	return data, nil
}

func (r *PostgresRepository) TotalProducts() (int, error) {
	var count int
	if err := r.db.QueryRow(totalProductsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) TopProducts(limit int) ([]TopProduct, error) {
	rows, err := r.db.Query(topProductsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopProduct, 0)
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ID, &tp.Name, &tp.ImageURL, &tp.Rating, &tp.Sold); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) RatedProductsCount(frame TimeFrame) (int, error) {
	from, to := window(frame)
	var count int
	if err := r.db.QueryRow(ratedProductsQuery, from, to).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) LoginEntries() ([]LoginEntry, error) {
	rows, err := r.db.Query(loginEntriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LoginEntry, 0)
	for rows.Next() {
		var (
			entry      LoginEntry
			loginTime  time.Time
			logoutTime sql.NullTime
		)
		if err := rows.Scan(&entry.ID, &entry.FirstName, &entry.LastName, &entry.Contact, &entry.Email, &loginTime, &logoutTime); err != nil {
			return nil, err
		}
		entry.LoginTime = loginTime.UTC().Format(time.RFC3339)
		if logoutTime.Valid {
			t := logoutTime.Time.UTC().Format(time.RFC3339)
			entry.LogoutTime = &t
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
