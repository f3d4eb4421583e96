package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "stock_quantity", "category", "supplier_id", "reference_code", "rating"})
}

func TestList_ScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow(1, "Velvet Lipstick", "long wear", 50.0, "lipstick.jpg", 12, "Makeup", 3, "ORD-AAAA11111", 4.5).
		AddRow(2, "Matte Primer", nil, 30.0, nil, 5, nil, nil, nil, 0.0)
	mock.ExpectQuery("FROM products").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Category != "Makeup" || products[0].SupplierID != 3 {
		t.Fatalf("unexpected first product %+v", products[0])
	}
	// NULLs come back as zero values
	if products[1].Description != "" || products[1].Category != "" || products[1].SupplierID != 0 {
		t.Fatalf("unexpected second product %+v", products[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListPage_CountsBeforePaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))
	mock.ExpectQuery("LIMIT \\$1 OFFSET \\$2").
		WithArgs(10, 10).
		WillReturnRows(productRows().AddRow(11, "P", "d", 1.0, "i", 1, "Makeup", 1, "ORD-BBBB22222", 0.0))

	products, total, err := repo.ListPage(10, 10)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if total != 23 {
		t.Fatalf("expected total 23, got %d", total)
	}
	if len(products) != 1 || products[0].ID != 11 {
		t.Fatalf("unexpected page %+v", products)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateAndDelete_ZeroRowsMeanNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE products").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Update(99, Product{Name: "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound from update, got %v", err)
	}

	mock.ExpectExec("DELETE FROM products").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound from delete, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCategories_FilterArgument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT DISTINCT category").
		WithArgs(LimitedCategory).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Makeup").AddRow("Skincare"))

	categories, err := repo.Categories()
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Makeup" {
		t.Fatalf("unexpected categories %+v", categories)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
