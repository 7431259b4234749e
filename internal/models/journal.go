package models

import "time"

// JournalEntry is one inbound push event as recorded by the kiosk.
type JournalEntry struct {
	EntryID     string    `json:"entry_id"`
	ReceivedAt  time.Time `json:"received_at"`
	Type        string    `json:"type"`        // CONNECT | DISCONNECT | NEW_LOG | SENSOR_UPDATE
	Description string    `json:"description"` // human-readable
	Payload     any       `json:"payload,omitempty"`
}
