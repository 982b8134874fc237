package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"heating_advisor/internal/models"
)

// ErrUsernameTaken is returned by Create for a duplicate admin username.
var ErrUsernameTaken = errors.New("username already taken")

// AdminSQLite stores the catalog maintainers allowed to use the admin API.
type AdminSQLite struct {
	db *sql.DB
}

func NewAdminSQLite(db *sql.DB) *AdminSQLite {
	return &AdminSQLite{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*AdminSQLite)(nil)

const (
	insertAdminSQL           = `INSERT INTO admins (username, password_hash) VALUES (?, ?)`
	selectAdminByUsernameSQL = `SELECT id, username, password_hash FROM admins WHERE username = ?`
	countAdminsSQL           = `SELECT COUNT(*) FROM admins`
)

// Create inserts a new admin and returns its ID.
func (r *AdminSQLite) Create(username, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertAdminSQL, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert admin %q: %w", username, ErrUsernameTaken)
		}
		return 0, fmt.Errorf("insert admin %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for admin %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches an admin by username. Returns (nil, nil) if not found.
func (r *AdminSQLite) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectAdminByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select admin %q: %w", username, err)
	}
	return &u, nil
}

// Count returns the number of maintainers.
func (r *AdminSQLite) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countAdminsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

// modernc sqlite reports constraint failures only through the message text.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
