package models

// Operator is a kiosk account allowed to run mutating actions when
// auth.enabled is set.
type Operator struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
