package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, description, price, image_url, stock_quantity, category, supplier_id, reference_code, rating`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
	`
	listByCategoryQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY id
	`
	listPageQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	countProductsQuery = `SELECT COUNT(*) FROM products`
	categoriesQuery    = `SELECT DISTINCT category FROM products WHERE category != $1 ORDER BY category`
	getProductQuery    = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, description, price, image_url, stock_quantity, category, supplier_id, reference_code, rating)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			price = $3,
			image_url = $4,
			stock_quantity = $5,
			category = $6,
			supplier_id = $7,
			rating = $8
		WHERE id = $9
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ListByCategory(category string) ([]Product, error) {
	rows, err := r.db.Query(listByCategoryQuery, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *PostgresRepository) ListPage(limit, offset int) ([]Product, int, error) {
	var total int
	if err := r.db.QueryRow(countProductsQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(listPageQuery, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *PostgresRepository) Categories() ([]Category, error) {
	rows, err := r.db.Query(categoriesQuery, LimitedCategory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, Category{ID: name, Name: name})
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(insertProductQuery,
		p.Name, p.Description, p.Price, p.ImageURL, p.StockQuantity, p.Category, p.SupplierID, p.ReferenceCode, p.Rating).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) error {
	res, err := r.db.Exec(updateProductQuery,
		p.Name, p.Description, p.Price, p.ImageURL, p.StockQuantity, p.Category, p.SupplierID, p.Rating, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
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

func scanProduct(row rowScanner) (Product, error) {
	var (
		p          Product
		desc       sql.NullString
		imageURL   sql.NullString
		category   sql.NullString
		supplierID sql.NullInt64
		refCode    sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &desc, &p.Price, &imageURL, &p.StockQuantity, &category, &supplierID, &refCode, &p.Rating)
	if err != nil {
		return Product{}, err
	}
	p.Description = desc.String
	p.ImageURL = imageURL.String
	p.Category = category.String
	p.SupplierID = int(supplierID.Int64)
	p.ReferenceCode = refCode.String
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
