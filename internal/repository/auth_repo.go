package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"parking_kiosk/internal/models"
)

// ErrOperatorExists is returned when the username is already taken.
var ErrOperatorExists = errors.New("operator already exists")

type OperatorSQLite struct {
	db *sql.DB
}

func NewOperatorSQLite(db *sql.DB) *OperatorSQLite { return &OperatorSQLite{db: db} }

var _ Authorization = (*OperatorSQLite)(nil)

const (
	insertOperatorSQL       = `INSERT INTO users (username, password_hash) VALUES (?, ?)`
	selectOperatorByNameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// Create stores a new operator and returns its row ID.
func (r *OperatorSQLite) Create(username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(context.Background(), insertOperatorSQL, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert operator %q: %w", username, ErrOperatorExists)
		}
		return 0, fmt.Errorf("insert operator %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for operator %q: %w", username, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) when no operator has that name.
func (r *OperatorSQLite) GetByUsername(username string) (*models.Operator, error) {
	var op models.Operator
	err := r.db.QueryRowContext(context.Background(), selectOperatorByNameSQL, username).
		Scan(&op.ID, &op.Username, &op.PasswordHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("select operator %q: %w", username, err)
	}
	return &op, nil
}

// modernc reports constraint failures only through the message text.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
