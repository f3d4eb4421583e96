package order

import (
	"database/sql"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (user_id, full_name, phone_number, address, city, state_province, postal_code, delivery_address, payment_method, subtotal, delivery_fee, total, tracking_number, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id, order_date
	`
	insertLineItemQuery = `
		INSERT INTO ordered_products (order_id, product_id, name, quantity, price)
		VALUES ($1,$2,$3,$4,$5)
	`
	getOrderHeaderQuery = `
		SELECT id, user_id, full_name, phone_number, address, city, state_province, postal_code, delivery_address, payment_method, subtotal, delivery_fee, total, tracking_number, status, is_rated, in_sales_report, order_date
		FROM orders
		WHERE id = $1 AND user_id = $2
	`
	getOrderItemsQuery = `
		SELECT op.product_id, op.name, op.quantity, op.price, COALESCE(p.image_url, '')
		FROM ordered_products op
		LEFT JOIN products p ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY op.id
	`
	getTrackingQuery = `
		SELECT id, tracking_number, status, order_date
		FROM orders
		WHERE id = $1 AND user_id = $2
	`
	historyQuery = `
		SELECT o.id, o.tracking_number, o.status, o.order_date, o.total, o.is_rated,
		       STRING_AGG(op.name, ', ' ORDER BY op.id) AS products
		FROM orders o
		JOIN ordered_products op ON o.id = op.order_id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.order_date DESC
	`
	listByUserQuery = `
		SELECT id, tracking_number, status, order_date, total
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`
	cancelOrderQuery = `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND user_id = $3 AND status = $4
	`
	getStatusQuery = `SELECT status FROM orders WHERE id = $1`
	setStatusQuery = `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`
	setDateQuery   = `UPDATE orders SET order_date = $1 WHERE id = $2`

	listInSalesReportQuery = `
		SELECT id, user_id, full_name, phone_number, address, city, state_province, postal_code, delivery_address, payment_method, subtotal, delivery_fee, total, tracking_number, status, is_rated, in_sales_report, order_date
		FROM orders
		WHERE in_sales_report = TRUE
		ORDER BY order_date DESC
	`
	removeFromSalesReportQuery = `UPDATE orders SET in_sales_report = FALSE WHERE id = $1 AND in_sales_report = TRUE`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the order header and all of its line items inside one
// transaction. Any failure rolls the whole order back so no partial order
// is ever visible.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	row := tx.QueryRow(insertOrderQuery,
		ord.UserID,
		ord.Billing.FullName, ord.Billing.PhoneNumber, ord.Billing.Address,
		ord.Billing.City, ord.Billing.StateProvince, ord.Billing.PostalCode,
		ord.Billing.DeliveryAddress,
		ord.PaymentMethod,
		ord.Subtotal, ord.DeliveryFee, ord.Total,
		ord.TrackingNumber, string(ord.Status),
	)
	var orderDate time.Time
	if err := row.Scan(&ord.ID, &orderDate); err != nil {
		return Order{}, err
	}
	ord.OrderDate = orderDate.UTC().Format(time.RFC3339)

	for _, item := range ord.Items {
		if _, err := tx.Exec(insertLineItemQuery, ord.ID, item.ProductID, item.Name, item.Quantity, item.Price); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	ord.InSalesReport = true
	return ord, nil
}

func (r *PostgresRepository) GetDetail(orderID, userID int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderHeaderQuery, orderID, userID))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	rows, err := r.db.Query(getOrderItemsQuery, orderID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.Price, &item.ImageURL); err != nil {
			return Order{}, err
		}
		ord.Items = append(ord.Items, item)
	}
	return ord, rows.Err()
}

func (r *PostgresRepository) GetTracking(orderID, userID int) (Tracking, error) {
	var (
		t         Tracking
		createdAt time.Time
	)
	err := r.db.QueryRow(getTrackingQuery, orderID, userID).Scan(&t.ID, &t.TrackingNumber, &t.Status, &createdAt)
	if err == sql.ErrNoRows {
		return Tracking{}, ErrNotFound
	}
	if err != nil {
		return Tracking{}, err
	}
	t.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return t, nil
}

func (r *PostgresRepository) History(userID int) ([]HistoryEntry, error) {
	rows, err := r.db.Query(historyQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HistoryEntry, 0)
	for rows.Next() {
		var (
			entry     HistoryEntry
			orderDate time.Time
		)
		if err := rows.Scan(&entry.ID, &entry.TrackingNumber, &entry.Status, &orderDate, &entry.Total, &entry.IsRated, &entry.Products); err != nil {
			return nil, err
		}
		entry.OrderDate = orderDate.UTC().Format(time.RFC3339)
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) ListByUser(userID int) ([]Summary, error) {
	rows, err := r.db.Query(listByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var (
			s         Summary
			orderDate time.Time
		)
		if err := rows.Scan(&s.ID, &s.TrackingNumber, &s.Status, &orderDate, &s.Total); err != nil {
			return nil, err
		}
		s.OrderDate = orderDate.UTC().Format(time.RFC3339)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Cancel flips the status to Cancelled only while the order is still in
// "Order Placed" and owned by the caller. Zero affected rows means the
// order is absent, foreign, or past the point of cancellation.
func (r *PostgresRepository) Cancel(orderID, userID int) error {
	res, err := r.db.Exec(cancelOrderQuery, string(StatusCancelled), orderID, userID, string(StatusPlaced))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotCancelable
	}
	return nil
}

func (r *PostgresRepository) GetStatus(orderID int) (Status, error) {
	var s string
	err := r.db.QueryRow(getStatusQuery, orderID).Scan(&s)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return Status(s), nil
}

// SetStatus performs the transition conditionally on the expected current
// status so concurrent updates cannot skip a state.
func (r *PostgresRepository) SetStatus(orderID int, from, to Status) error {
	res, err := r.db.Exec(setStatusQuery, string(to), orderID, string(from))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetOrderDate(orderID int, date string) error {
	res, err := r.db.Exec(setDateQuery, date, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ListInSalesReport() ([]Order, error) {
	rows, err := r.db.Query(listInSalesReportQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) RemoveFromSalesReport(orderID int) error {
	res, err := r.db.Exec(removeFromSalesReportQuery, orderID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord       Order
		status    string
		orderDate time.Time
	)
	err := row.Scan(
		&ord.ID, &ord.UserID,
		&ord.Billing.FullName, &ord.Billing.PhoneNumber, &ord.Billing.Address,
		&ord.Billing.City, &ord.Billing.StateProvince, &ord.Billing.PostalCode,
		&ord.Billing.DeliveryAddress,
		&ord.PaymentMethod,
		&ord.Subtotal, &ord.DeliveryFee, &ord.Total,
		&ord.TrackingNumber, &status, &ord.IsRated, &ord.InSalesReport, &orderDate,
	)
	if err != nil {
		return Order{}, err
	}
	ord.Status = Status(status)
	ord.OrderDate = orderDate.UTC().Format(time.RFC3339)
	return ord, nil
}
