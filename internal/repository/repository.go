package repository

import (
	"context"
	"database/sql"
	"time"

	"parking_kiosk/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.Operator, error)
}

type HistoryCacheRepo interface {
	Save(ctx context.Context, c models.HistoryCache) error
	Load(ctx context.Context) (models.HistoryCache, error)
}

type JournalRepo interface {
	Append(ctx context.Context, e models.JournalEntry) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.JournalEntry, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type Repository struct {
	HistoryCache HistoryCacheRepo
	Journal      JournalRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		HistoryCache: NewHistoryCacheSQLite(db),
		Journal:      NewJournalSQLite(db),
		Auth:         NewOperatorSQLite(db),
	}
}
