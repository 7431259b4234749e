package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"parking_kiosk/internal/models"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestJournalAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertJournalSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			"NEW_LOG", "30A-111 IN",
			`{"plate":"30A-111","status":"IN"}`,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.JournalEntry{
		Type:        "  new_log ",
		Description: "30A-111 IN",
		Payload:     json.RawMessage(`{"plate":"30A-111","status":"IN"}`),
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalAppend_NilPayload(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)
	at := time.Date(2024, 1, 1, 8, 0, 0, 0, time.FixedZone("ICT", 7*3600))

	mock.ExpectExec(regexp.QuoteMeta(insertJournalSQL)).
		WithArgs("e1", "2024-01-01 01:00:00", "CONNECT", "push channel up", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Append(ctx(t), models.JournalEntry{EntryID: "e1", ReceivedAt: at, Type: "connect", Description: "push channel up"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)

	mock.ExpectExec("INSERT INTO push_journal").
		WillReturnError(errors.New("down"))

	err = repo.Append(ctx(t), models.JournalEntry{Type: "sensor_update", Description: "x", Payload: map[string]any{"mq135": 120}})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalList_NoFilters_And_PayloadParsing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js := `{"plate":"30A-111"}`

	rows := sqlmock.NewRows([]string{"id", "received_at", "type", "message", "payload"}).
		AddRow("1", now, "NEW_LOG", "m1", js).
		AddRow("2", now.Add(time.Hour), "DISCONNECT", "m2", nil).
		AddRow("3", now.Add(2*time.Hour), "SENSOR_UPDATE", "m3", "{broken")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, received_at, type, message, payload FROM push_journal ORDER BY received_at ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	b, _ := json.Marshal(got[0].Payload)
	if string(b) != js {
		t.Fatalf("payload mismatch: %s vs %s", b, js)
	}
	if got[1].Payload != nil {
		t.Fatalf("expected nil payload, got %#v", got[1].Payload)
	}
	if raw, ok := got[2].Payload.(string); !ok || raw != "{broken" {
		t.Fatalf("malformed payload must be kept raw, got %#v", got[2].Payload)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := `SELECT id, received_at, type, message, payload FROM push_journal WHERE received_at >= ? AND received_at <= ? AND type = ? ORDER BY received_at ASC`

	rows := sqlmock.NewRows([]string{"id", "received_at", "type", "message", "payload"}).
		AddRow("2", from, "NEW_LOG", "b", nil)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("2025-01-01 11:00:00", "2025-01-01 12:00:00", "NEW_LOG").
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), from, to, " new_log ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].EntryID != "2" {
		t.Fatalf("unexpected results: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalList_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)

	rows := sqlmock.NewRows([]string{"id", "received_at", "type", "message", "payload"}).
		// received_at wrong type to force scan error
		AddRow("x", 123, "NEW_LOG", "msg", nil)

	mock.ExpectQuery("SELECT id, received_at").WillReturnRows(rows)

	if _, err := repo.List(ctx(t), time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestJournalPrune(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	repo := NewJournalSQLite(db)
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(pruneJournalSQL)).
		WithArgs("2025-01-01 00:00:00").
		WillReturnResult(sqlmock.NewResult(0, 17))

	n, err := repo.Prune(ctx(t), cutoff)
	if err != nil || n != 17 {
		t.Fatalf("Prune = %d, %v", n, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
