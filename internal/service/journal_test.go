package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
)

func fixedZone(name string, offsetSec int) *time.Location {
	return time.FixedZone(name, offsetSec)
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func newJournalService(repo *fakeJournalRepo) *JournalService {
	return NewJournalService(repo, logger.Get(logger.ErrorLevel))
}

// normalizeToUTC

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(fixedZone("ICT", 7*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 5, 34, 56, 0, time.UTC) // 12:34:56+07 == 05:34:56Z
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := normalizeToUTC(tc.in)
			if !tc.want(got) {
				t.Fatalf("unexpected normalizeToUTC result: %v (loc=%v)", got, got.Location())
			}
		})
	}
}

// normalizeEventType

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "empty stays empty", in: "", exp: ""},
		{name: "trim spaces", in: "  CONNECT ", exp: "CONNECT"},
		{name: "uppercase", in: "new_log", exp: "NEW_LOG"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeEventType(c.in); got != c.exp {
				t.Fatalf("normalizeEventType(%q) = %q; want %q", c.in, got, c.exp)
			}
		})
	}
}

// JournalService.Entries

func TestJournalService_Entries_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	frepo := &fakeJournalRepo{entries: []models.JournalEntry{{EntryID: "1"}}}
	svc := newJournalService(frepo)

	fromLocal := mustTimeIn(fixedZone("UTC+5", 5*3600), 2025, time.October, 1, 10, 0, 0)
	toLocal := mustTimeIn(fixedZone("UTC-2", -2*3600), 2025, time.October, 1, 12, 30, 0)

	out, err := svc.Entries(context.Background(), LogFilter{From: fromLocal, To: toLocal, Type: "  sensor_update "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EntryID != "1" {
		t.Fatalf("unexpected entries: %+v", out)
	}

	wantFrom := time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)
	if !frepo.gotFrom.Equal(wantFrom) || !frepo.gotTo.Equal(wantTo) {
		t.Fatalf("repo got from=%v to=%v", frepo.gotFrom, frepo.gotTo)
	}
	if frepo.gotType != "SENSOR_UPDATE" {
		t.Fatalf("repo gotType=%q", frepo.gotType)
	}
}

func TestJournalService_Entries_ValidationError(t *testing.T) {
	t.Parallel()

	frepo := &fakeJournalRepo{}
	_, err := newJournalService(frepo).Entries(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange; got %v", err)
	}
	if frepo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", frepo.calls)
	}
}

func TestJournalService_Entries_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	frepo := &fakeJournalRepo{err: errors.New("db down")}
	if _, err := newJournalService(frepo).Entries(context.Background(), LogFilter{}); !errors.Is(err, frepo.err) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}

func TestJournalService_RunRetention_DisabledReturns(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	go func() {
		newJournalService(&fakeJournalRepo{}).RunRetention(context.Background(), 0, time.Minute)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("RunRetention with zero keep must return immediately")
	}
}
