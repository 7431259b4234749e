package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/repository"
)

type JournalService struct {
	repo repository.JournalRepo
	log  *logger.Logger
}

func NewJournalService(repo repository.JournalRepo, log *logger.Logger) *JournalService {
	return &JournalService{repo: repo, log: log}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: from must be <= to")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}
	return from, to, normalizeEventType(f.Type), nil
}

func (s *JournalService) Entries(ctx context.Context, f LogFilter) ([]models.JournalEntry, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, from, to, typ)
}

// RunRetention prunes entries older than keep, once per every, until ctx is canceled.
func (s *JournalService) RunRetention(ctx context.Context, keep, every time.Duration) {
	if keep <= 0 || every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := s.repo.Prune(ctx, now.Add(-keep))
			if err != nil {
				s.log.Errorw("journal_prune_failed", "err", err)
				continue
			}
			if n > 0 {
				s.log.Infow("journal_pruned", "removed", n)
			}
		}
	}
}
