package service

import (
	"errors"
	"time"

	"parking_kiosk/internal/models"
)

// Domain errors surfaced to handlers.
var (
	ErrPlateRequired = errors.New("plate is required")
	ErrNotConfirmed  = errors.New("delete must be confirmed")
	ErrUnknownAction = errors.New("unknown control action")
	ErrInvalidDate   = errors.New("invalid date")
)

// Outcome is what an operator sees after a mutating action.
type Outcome struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message"`
	FormCleared bool   `json:"form_cleared,omitempty"`
}

// RevenueView is the range and heading a revenue period resolved to.
type RevenueView struct {
	Range models.DateRange `json:"range"`
	Title string           `json:"title"`
}

// LogFilter selects journal entries by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "CONNECT", "DISCONNECT", "NEW_LOG", "SENSOR_UPDATE"
}
