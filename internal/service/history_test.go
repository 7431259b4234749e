package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/clock"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/models"
)

func newHistoryService(d *fakeDispatcher, cache *fakeCacheRepo) *HistoryService {
	clk := clock.NewVirtual(time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local))
	return NewHistoryService(d, cache, clk)
}

func TestHistoryService_FetchHistory_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      models.DateRange
		want    models.DateRange
		wantErr error
	}{
		{name: "empty fetches default", in: models.DateRange{}, want: models.DateRange{}},
		{name: "trims bounds", in: models.DateRange{Start: " 2024-03-01 ", End: "2024-03-02"}, want: models.DateRange{Start: "2024-03-01", End: "2024-03-02"}},
		{name: "half range rejected", in: models.DateRange{Start: "2024-03-01"}, wantErr: board.ErrIncompleteRange},
		{name: "bad date rejected", in: models.DateRange{Start: "2024-13-01", End: "2024-03-02"}, wantErr: ErrInvalidDate},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d := &fakeDispatcher{}
			svc := newHistoryService(d, &fakeCacheRepo{})

			err := svc.FetchHistory(context.Background(), tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err=%v, want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if len(d.fetches) != 0 {
					t.Fatalf("invalid range must not be fetched: %+v", d.fetches)
				}
				return
			}
			if len(d.fetches) != 1 || d.fetches[0] != tc.want {
				t.Fatalf("fetches=%+v, want [%+v]", d.fetches, tc.want)
			}
		})
	}
}

func TestHistoryService_ResetAndSearch(t *testing.T) {
	t.Parallel()

	d := &fakeDispatcher{}
	svc := newHistoryService(d, &fakeCacheRepo{})

	if err := svc.ResetHistory(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.fetches) != 1 || d.fetches[0].Filtered() {
		t.Fatalf("reset must fetch the default set, got %+v", d.fetches)
	}

	if err := svc.SearchHistory("30a"); err != nil {
		t.Fatal(err)
	}
	msgs := d.messages()
	if len(msgs) != 1 {
		t.Fatalf("posted=%+v", msgs)
	}
	if s, ok := msgs[0].(dispatch.Search); !ok || s.Term != "30a" {
		t.Fatalf("posted=%+v", msgs[0])
	}
}

func TestHistoryService_FetchRevenue(t *testing.T) {
	t.Parallel()

	d := &fakeDispatcher{}
	svc := newHistoryService(d, &fakeCacheRepo{})

	view, err := svc.FetchRevenue(context.Background(), board.PeriodThisMonth, models.DateRange{})
	if err != nil {
		t.Fatalf("FetchRevenue: %v", err)
	}
	want := models.DateRange{Start: "2024-03-01", End: "2024-03-31"}
	if view.Range != want || view.Title != "Doanh Thu Tháng Này" {
		t.Fatalf("view=%+v", view)
	}
	if len(d.revenues) != 1 || d.revenues[0] != view.Title || d.fetches[0] != want {
		t.Fatalf("dispatcher got fetches=%+v titles=%v", d.fetches, d.revenues)
	}

	if _, err := svc.FetchRevenue(context.Background(), board.PeriodCustom, models.DateRange{End: "2024-03-02"}); !errors.Is(err, board.ErrIncompleteRange) {
		t.Fatalf("custom without start: err=%v", err)
	}
	if _, err := svc.FetchRevenue(context.Background(), "last_year", models.DateRange{}); !errors.Is(err, board.ErrUnknownPeriod) {
		t.Fatalf("unknown period: err=%v", err)
	}
	if len(d.fetches) != 1 {
		t.Fatalf("rejected periods must not fetch: %+v", d.fetches)
	}
}

func TestHistoryService_WarmHistory(t *testing.T) {
	t.Parallel()

	d := &fakeDispatcher{}
	svc := newHistoryService(d, &fakeCacheRepo{})
	if err := svc.WarmHistory(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.warmed) != 0 {
		t.Fatalf("empty cache must not warm the board")
	}

	cached := models.HistoryCache{ID: 1, Records: []models.TransactionRecord{{Plate: "30A-111"}}}
	svc = newHistoryService(d, &fakeCacheRepo{cache: cached})
	if err := svc.WarmHistory(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(d.warmed) != 1 || d.warmed[0].Records[0].Plate != "30A-111" {
		t.Fatalf("warmed=%+v", d.warmed)
	}

	svc = newHistoryService(d, &fakeCacheRepo{err: errors.New("db down")})
	if err := svc.WarmHistory(context.Background()); err == nil {
		t.Fatalf("expected cache error")
	}
}
