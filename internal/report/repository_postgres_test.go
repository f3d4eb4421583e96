package report

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestWindow_Frames(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	from, to := window(FrameToday)
	if !from.Equal(today) || !to.Equal(today) {
		t.Fatalf("today frame should span exactly today, got %v..%v", from, to)
	}

	from, to = window(FrameYesterday)
	if !from.Equal(today.AddDate(0, 0, -1)) || !to.Equal(today.AddDate(0, 0, -1)) {
		t.Fatalf("yesterday frame should span exactly yesterday, got %v..%v", from, to)
	}

	from, to = window(FrameLastWeek)
	if !from.Equal(today.AddDate(0, 0, -7)) || !to.Equal(today.AddDate(0, 0, -1)) {
		t.Fatalf("last week frame mismatch, got %v..%v", from, to)
	}

	from, to = window(FrameLastMonth)
	if !from.Equal(today.AddDate(0, -1, 0)) || !to.Equal(today.AddDate(0, 0, -1)) {
		t.Fatalf("last month frame mismatch, got %v..%v", from, to)
	}

	// unknown frames fall back to today
	from, to = window(TimeFrame("bogus"))
	if !from.Equal(today) || !to.Equal(today) {
		t.Fatalf("unknown frame should fall back to today, got %v..%v", from, to)
	}
}

func TestSalesData(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM orders").
		WillReturnRows(sqlmock.NewRows([]string{"sum", "count", "customers"}).AddRow(1234.5, 7, 3))

	data, err := repo.SalesData(FrameToday)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if data.PeriodSales != 1234.5 || data.TotalOrders != 7 || data.TotalCustomers != 3 {
		t.Fatalf("unexpected sales data %+v", data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTopProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "image_url", "rating", "sold"}).
		AddRow(1, "Velvet Lipstick", "lipstick.jpg", 4.5, 12).
		AddRow(2, "Matte Primer", "", 0.0, 0)
	mock.ExpectQuery("LEFT JOIN ordered_products").WithArgs(5).WillReturnRows(rows)

	products, err := repo.TopProducts(5)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Sold != 12 || products[0].Name != "Velvet Lipstick" {
		t.Fatalf("unexpected top product %+v", products[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoginEntries_NullLogout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	login := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	logout := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_first_name", "user_last_name", "contact", "email", "login_time", "logout_time"}).
		AddRow(1, "Ana", "Cruz", "09171234567", "ana@example.com", login, logout).
		AddRow(2, "Ben", "Reyes", "", "ben@example.com", login, nil)
	mock.ExpectQuery("FROM user_login").WillReturnRows(rows)

	entries, err := repo.LoginEntries()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].LogoutTime == nil || *entries[0].LogoutTime != "2026-08-30T10:00:00Z" {
		t.Fatalf("unexpected logout time %+v", entries[0].LogoutTime)
	}
	// an open session has no logout time yet
	if entries[1].LogoutTime != nil {
		t.Fatalf("expected nil logout time for open session, got %v", *entries[1].LogoutTime)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
