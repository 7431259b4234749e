package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parking_kiosk/internal/models"
)

type HistoryCacheSQLite struct {
	db *sql.DB
}

func NewHistoryCacheSQLite(db *sql.DB) *HistoryCacheSQLite {
	return &HistoryCacheSQLite{db: db}
}

const (
	historyCacheRowID = 1

	upsertHistoryCacheSQL = `
		INSERT INTO history_cache (id, range_start, range_end, records, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			range_start=excluded.range_start,
			range_end=excluded.range_end,
			records=excluded.records,
			fetched_at=excluded.fetched_at
	`

	selectHistoryCacheSQL = `
		SELECT id, range_start, range_end, records, fetched_at
		FROM history_cache WHERE id=?
	`
)

// Save replaces the cached payload (there is only ever one row).
func (r *HistoryCacheSQLite) Save(ctx context.Context, c models.HistoryCache) error {
	records := c.Records
	if records == nil {
		records = []models.TransactionRecord{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history cache: %w", err)
	}

	ts := c.FetchedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	if _, err := r.db.ExecContext(ctx, upsertHistoryCacheSQL,
		historyCacheRowID,
		c.Range.Start,
		c.Range.End,
		string(b),
		ts,
	); err != nil {
		return fmt.Errorf("save history cache: %w", err)
	}
	return nil
}

// Load returns the cached payload, or the zero value when nothing was saved yet.
func (r *HistoryCacheSQLite) Load(ctx context.Context) (models.HistoryCache, error) {
	row := r.db.QueryRowContext(ctx, selectHistoryCacheSQL, historyCacheRowID)

	var c models.HistoryCache
	var records string
	if err := row.Scan(&c.ID, &c.Range.Start, &c.Range.End, &records, &c.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HistoryCache{}, nil
		}
		return models.HistoryCache{}, fmt.Errorf("load history cache: %w", err)
	}
	if err := json.Unmarshal([]byte(records), &c.Records); err != nil {
		return models.HistoryCache{}, fmt.Errorf("decode history cache: %w", err)
	}
	c.FetchedAt = c.FetchedAt.UTC()
	return c, nil
}
