package order

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func testOrder() Order {
	return Order{
		UserID: 42,
		Billing: BillingInfo{
			FullName:    "Ana Cruz",
			PhoneNumber: "09171234567",
			Address:     "12 Mabini St",
			City:        "Quezon City",
		},
		PaymentMethod:  "cod",
		Subtotal:       130,
		DeliveryFee:    60,
		Total:          190,
		TrackingNumber: "A1B2C3D4E5F60708",
		Status:         StatusPlaced,
		Items: []LineItem{
			{ProductID: 1, Name: "Velvet Lipstick", Quantity: 2, Price: 50},
			{ProductID: 2, Name: "Matte Primer", Quantity: 1, Price: 30},
		},
	}
}

func TestCreate_CommitsHeaderAndAllItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	placed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_date"}).AddRow(7, placed))
	mock.ExpectExec("INSERT INTO ordered_products").
		WithArgs(7, 1, "Velvet Lipstick", 2, 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ordered_products").
		WithArgs(7, 2, "Matte Primer", 1, 30.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.Create(testOrder())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected order id 7, got %d", created.ID)
	}
	if created.OrderDate != "2026-08-30T10:00:00Z" {
		t.Fatalf("unexpected order date %q", created.OrderDate)
	}
	if !created.InSalesReport {
		t.Fatalf("expected new order to be in the sales report")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A failure on the last line item must roll back the header and the items
// already written, so a partial order is never stored.
func TestCreate_RollsBackWhenLineItemFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_date"}).AddRow(7, time.Now()))
	mock.ExpectExec("INSERT INTO ordered_products").
		WithArgs(7, 1, "Velvet Lipstick", 2, 50.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ordered_products").
		WithArgs(7, 2, "Matte Primer", 1, 30.0).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if _, err := repo.Create(testOrder()); err == nil {
		t.Fatalf("expected error when a line item insert fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCancel_ZeroRowsMeansNotCancelable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders").
		WithArgs(string(StatusCancelled), 7, 42, string(StatusPlaced)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Cancel(7, 42); err != ErrNotCancelable {
		t.Fatalf("expected ErrNotCancelable, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetStatus_ConditionalOnCurrentStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders").
		WithArgs(string(StatusDelivered), 7, string(StatusPlaced)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetStatus(7, StatusPlaced, StatusDelivered); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	mock.ExpectExec("UPDATE orders").
		WithArgs(string(StatusDelivered), 7, string(StatusPlaced)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetStatus(7, StatusPlaced, StatusDelivered); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound when no row matches, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
