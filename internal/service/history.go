package service

import (
	"context"
	"fmt"
	"strings"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/clock"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/repository"
)

type HistoryService struct {
	d     Dispatcher
	cache repository.HistoryCacheRepo
	clk   clock.Clock
}

func NewHistoryService(d Dispatcher, cache repository.HistoryCacheRepo, clk clock.Clock) *HistoryService {
	return &HistoryService{d: d, cache: cache, clk: clk}
}

// validateRange trims both bounds. A range is either empty or complete, and
// complete ranges must hold real dates.
func validateRange(rng models.DateRange) (models.DateRange, error) {
	rng.Start = strings.TrimSpace(rng.Start)
	rng.End = strings.TrimSpace(rng.End)
	if rng.Start == "" && rng.End == "" {
		return rng, nil
	}
	if !rng.Filtered() {
		return models.DateRange{}, board.ErrIncompleteRange
	}
	for _, d := range []string{rng.Start, rng.End} {
		if err := board.ValidateDate(d); err != nil {
			return models.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
	}
	return rng, nil
}

// FetchHistory applies a date filter. The empty range fetches the default set.
func (s *HistoryService) FetchHistory(ctx context.Context, rng models.DateRange) error {
	rng, err := validateRange(rng)
	if err != nil {
		return err
	}
	return s.d.FetchHistory(ctx, rng)
}

// ResetHistory clears the filter and fetches the default set.
func (s *HistoryService) ResetHistory(ctx context.Context) error {
	return s.d.FetchHistory(ctx, models.DateRange{})
}

// SearchHistory filters the cached history by plate without a refetch.
func (s *HistoryService) SearchHistory(term string) error {
	return s.d.Post(dispatch.Search{Term: term})
}

// FetchRevenue resolves a quick-select period and fetches its range.
func (s *HistoryService) FetchRevenue(ctx context.Context, period string, custom models.DateRange) (RevenueView, error) {
	if period == board.PeriodCustom {
		var err error
		if custom, err = validateRange(custom); err != nil {
			return RevenueView{}, err
		}
	}
	rng, title, err := board.RevenuePeriod(period, s.clk.Now(), custom)
	if err != nil {
		return RevenueView{}, err
	}
	if err := s.d.FetchRevenue(ctx, rng, title); err != nil {
		return RevenueView{}, err
	}
	return RevenueView{Range: rng, Title: title}, nil
}

// WarmHistory shows the last persisted history until the first fetch lands.
func (s *HistoryService) WarmHistory(ctx context.Context) error {
	c, err := s.cache.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history cache: %w", err)
	}
	if c.ID == 0 {
		return nil
	}
	return s.d.Warm(c)
}
