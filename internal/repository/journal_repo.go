package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parking_kiosk/internal/models"
)

type JournalSQLite struct {
	db *sql.DB
}

func NewJournalSQLite(db *sql.DB) *JournalSQLite { return &JournalSQLite{db: db} }

const (
	insertJournalSQL = `
		INSERT INTO push_journal (id, received_at, type, message, payload)
		VALUES (?, ?, ?, ?, ?)
	`
	pruneJournalSQL = `DELETE FROM push_journal WHERE received_at < ?`

	journalTimeLayout = "2006-01-02 15:04:05"
)

// Append records one inbound event. If EntryID or ReceivedAt are empty, they're set.
func (r *JournalSQLite) Append(ctx context.Context, e models.JournalEntry) error {
	if e.EntryID == "" {
		e.EntryID = uuid.NewString()
	}
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = time.Now().UTC()
	} else {
		e.ReceivedAt = e.ReceivedAt.UTC()
	}

	var payload *string
	if e.Payload != nil {
		switch p := e.Payload.(type) {
		case json.RawMessage:
			s := string(p)
			payload = &s
		default:
			if b, err := json.Marshal(p); err == nil {
				s := string(b)
				payload = &s
			}
		}
	}

	_, err := r.db.ExecContext(ctx, insertJournalSQL,
		e.EntryID,
		e.ReceivedAt.Format(journalTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		payload,
	)
	if err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// List returns entries filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *JournalSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.JournalEntry, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "received_at >= ?")
		args = append(args, from.UTC().Format(journalTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "received_at <= ?")
		args = append(args, to.UTC().Format(journalTimeLayout))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, received_at, type, message, payload FROM push_journal`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY received_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	defer rows.Close()

	out := make([]models.JournalEntry, 0, 64)
	for rows.Next() {
		var e models.JournalEntry
		var payload sql.NullString
		if err := rows.Scan(&e.EntryID, &e.ReceivedAt, &e.Type, &e.Description, &payload); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.ReceivedAt = e.ReceivedAt.UTC()

		if payload.Valid && payload.String != "" {
			var v any
			if err := json.Unmarshal([]byte(payload.String), &v); err == nil {
				e.Payload = v
			} else {
				e.Payload = payload.String
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune deletes entries received before the cutoff and returns how many were removed.
func (r *JournalSQLite) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, pruneJournalSQL, before.UTC().Format(journalTimeLayout))
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune journal rows affected: %w", err)
	}
	return n, nil
}
