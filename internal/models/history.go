package models

import "time"

// DateRange is an inclusive [Start, End] pair of "YYYY-MM-DD" dates.
// The zero value means "the backend's default (latest) set".
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Filtered reports whether both bounds are set, which is the only case the backend filters on.
func (r DateRange) Filtered() bool { return r.Start != "" && r.End != "" }

// HistoryCache is the last accepted /api/history payload, kept so a restarted kiosk
// shows the previous table until the first fetch completes.
type HistoryCache struct {
	ID        int                 `json:"id"`
	Range     DateRange           `json:"range"`
	Records   []TransactionRecord `json:"records"`
	FetchedAt time.Time           `json:"fetched_at"`
}
