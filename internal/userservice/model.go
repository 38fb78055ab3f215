package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicateEmail = errors.New("duplicate email")
	ErrNotFound       = errors.New("user not found")
)

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// UniqueViolation reports whether err is a unique constraint violation on
// the named constraint.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == name
	}

	return false
}

func (m *UserModel) insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := m.db.QueryRowContext(ctx, query, u.Email, u.Password, u.Name).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch {
		case UniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getByCredentials(ctx context.Context, email, password string) (*User, error) {
	query := `
		SELECT id, email, password, name, created_at
		FROM users
		WHERE email = $1 AND password = $2`

	var u User
	err := m.db.QueryRowContext(ctx, query, email, password).Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
