package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"parking_kiosk/internal/backend"
	"parking_kiosk/internal/board"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/service"
)

func historyRouter(hist *mockHistory) (*mockMonitoring, http.Handler) {
	b := board.New(board.NewFormatter("vi-VN"))
	b.ApplyHistory(models.DateRange{Start: "2024-05-01", End: "2024-05-02"}, []models.TransactionRecord{
		{Plate: "30A-111", Status: "OUT", Fee: 5000, ExitTime: "2024-05-01 10:00:00"},
	})
	mon := newMockMonitoring(b.Snapshot())
	return mon, newTestRouter(&service.Service{Monitoring: mon, History: hist}, Options{})
}

func TestHistoryHandler_FetchPassesRange(t *testing.T) {
	hist := &mockHistory{}
	_, r := historyRouter(hist)

	w := doRequest(r, http.MethodPost, "/api/v1/history?start=2024-05-01&end=2024-05-02", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if hist.lastRange != (models.DateRange{Start: "2024-05-01", End: "2024-05-02"}) {
		t.Fatalf("range=%+v", hist.lastRange)
	}
	var out struct {
		Filter       models.DateRange `json:"filter"`
		Rows         []board.Row      `json:"rows"`
		RevenueTotal string           `json:"revenue_total"`
	}
	decodeBody(t, w, &out)
	if len(out.Rows) != 1 || out.Rows[0].Plate != "30A-111" || out.Filter.Start != "2024-05-01" {
		t.Fatalf("unexpected body: %+v", out)
	}
	if out.RevenueTotal == "" {
		t.Fatalf("revenue total missing")
	}
}

func TestHistoryHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"half range", board.ErrIncompleteRange, http.StatusBadRequest, msgRangeRequired},
		{"bad date", fmt.Errorf("%w: month out of range", service.ErrInvalidDate), http.StatusBadRequest, msgInvalidDate},
		{"backend down", fmt.Errorf("history: %w", backend.ErrTransport), http.StatusBadGateway, msgHistoryFailed},
		{"board stopped", dispatch.ErrStopped, http.StatusServiceUnavailable, msgBoardStopped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, r := historyRouter(&mockHistory{fetchErr: tc.err})
			w := doRequest(r, http.MethodPost, "/api/v1/history?start=2024-05-01", "", nil)
			if w.Code != tc.code {
				t.Fatalf("status=%d want %d", w.Code, tc.code)
			}
			var out map[string]string
			decodeBody(t, w, &out)
			if out["error"] != tc.message {
				t.Fatalf("error=%q want %q", out["error"], tc.message)
			}
		})
	}
}

func TestHistoryHandler_ResetAndSearch(t *testing.T) {
	hist := &mockHistory{}
	_, r := historyRouter(hist)

	w := doRequest(r, http.MethodPost, "/api/v1/history/reset", "", nil)
	if w.Code != http.StatusOK || hist.resets != 1 {
		t.Fatalf("reset status=%d resets=%d", w.Code, hist.resets)
	}

	w = doRequest(r, http.MethodPost, "/api/v1/history/search?plate=30a", "", nil)
	if w.Code != http.StatusAccepted {
		t.Fatalf("search status=%d", w.Code)
	}
	if hist.lastTerm != "30a" {
		t.Fatalf("term=%q", hist.lastTerm)
	}
}

func TestRevenueHandler(t *testing.T) {
	hist := &mockHistory{revenue: service.RevenueView{
		Range: models.DateRange{Start: "2024-05-01", End: "2024-05-31"},
		Title: "Doanh Thu Tháng Này",
	}}
	_, r := historyRouter(hist)

	w := doRequest(r, http.MethodPost, "/api/v1/revenue/this_month", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Title string       `json:"title"`
		Chart *board.Chart `json:"chart"`
	}
	decodeBody(t, w, &out)
	if out.Title != "Doanh Thu Tháng Này" || out.Chart == nil {
		t.Fatalf("unexpected body: %+v", out)
	}
	if hist.lastPeriod != board.PeriodThisMonth {
		t.Fatalf("period=%q", hist.lastPeriod)
	}
}

func TestRevenueHandler_CustomNeedsDates(t *testing.T) {
	hist := &mockHistory{revenueErr: board.ErrIncompleteRange}
	_, r := historyRouter(hist)

	w := doRequest(r, http.MethodPost, "/api/v1/revenue/custom?start=2024-05-01", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var out map[string]string
	decodeBody(t, w, &out)
	if out["error"] != msgCustomDate {
		t.Fatalf("error=%q", out["error"])
	}
	if hist.lastCustom.Start != "2024-05-01" || hist.lastCustom.End != "" {
		t.Fatalf("custom range=%+v", hist.lastCustom)
	}
}

func TestRevenueHandler_UnknownPeriod(t *testing.T) {
	hist := &mockHistory{revenueErr: fmt.Errorf("%w: %q", board.ErrUnknownPeriod, "decade")}
	_, r := historyRouter(hist)

	w := doRequest(r, http.MethodPost, "/api/v1/revenue/decade", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if hist.lastPeriod != "decade" {
		t.Fatalf("period=%q", hist.lastPeriod)
	}
}
