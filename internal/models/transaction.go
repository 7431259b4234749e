package models

import "strings"

// TransactionRecord is one parking_log row or one live new_log payload.
// Rows from /api/history carry entry_time/exit_time/image_path; live events carry time/image.
type TransactionRecord struct {
	ID        int64  `json:"id,omitempty"`
	Time      string `json:"time,omitempty"`
	EntryTime string `json:"entry_time,omitempty"`
	ExitTime  string `json:"exit_time,omitempty"`
	Plate     string `json:"plate"`
	RFIDUID   string `json:"rfid_uid,omitempty"`
	Status    string `json:"status"`
	Action    string `json:"action,omitempty"`
	Fee       Money  `json:"fee,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
	Image     string `json:"image,omitempty"`
}

// Timestamp returns entry_time, falling back to time.
func (r TransactionRecord) Timestamp() string {
	if r.EntryTime != "" {
		return r.EntryTime
	}
	return r.Time
}

// SettledAt returns exit_time, falling back to entry_time and then time.
func (r TransactionRecord) SettledAt() string {
	if r.ExitTime != "" {
		return r.ExitTime
	}
	return r.Timestamp()
}

// TimeOfDay extracts the "HH:MM:SS" part of a "YYYY-MM-DD HH:MM:SS" string.
// Strings without a date part are returned as-is.
func TimeOfDay(ts string) string {
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[i+1:]
	}
	return ts
}
