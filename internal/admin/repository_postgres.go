package admin

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const getAdminQuery = `SELECT id, username, password FROM admins WHERE username = $1`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(username string) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(getAdminQuery, username).Scan(&a.ID, &a.Username, &a.Password)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}
