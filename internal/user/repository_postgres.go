package user

import (
	"database/sql"
	"strings"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertUserQuery = `
		INSERT INTO registered_users (first_name, last_name, address, contact, email, password)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`
	getUserByEmailQuery = `
		SELECT id, first_name, last_name, address, contact, email, password
		FROM registered_users
		WHERE email = $1
	`
	getUserByIDQuery = `
		SELECT id, first_name, last_name, address, contact, email, password
		FROM registered_users
		WHERE id = $1
	`
	insertLoginQuery = `
		INSERT INTO user_login (user_first_name, user_last_name, contact, email, login_time)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`
	updateLogoutQuery = `UPDATE user_login SET logout_time = $1 WHERE id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(insertUserQuery, u.FirstName, u.LastName, u.Address, u.Contact, u.Email, u.Password).Scan(&u.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.scanUser(r.db.QueryRow(getUserByEmailQuery, email))
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.scanUser(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Address, &u.Contact, &u.Email, &u.Password)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) RecordLogin(u User, at time.Time) (int, error) {
	var id int
	err := r.db.QueryRow(insertLoginQuery, u.FirstName, u.LastName, u.Contact, u.Email, at).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PostgresRepository) RecordLogout(loginID int, at time.Time) error {
	res, err := r.db.Exec(updateLogoutQuery, at, loginID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
