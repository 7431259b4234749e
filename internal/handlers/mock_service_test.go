package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockMonitoring serves a board that tests can replace with publish.
type mockMonitoring struct {
	mu      sync.Mutex
	snap    board.Snapshot
	changed chan struct{}
}

func newMockMonitoring(s board.Snapshot) *mockMonitoring {
	return &mockMonitoring{snap: s, changed: make(chan struct{})}
}

func (m *mockMonitoring) Board() board.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *mockMonitoring) BoardChanged() <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.changed
}

func (m *mockMonitoring) publish(s board.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = s
	close(m.changed)
	m.changed = make(chan struct{})
}

type mockHistory struct {
	fetchErr   error
	resetErr   error
	searchErr  error
	revenue    service.RevenueView
	revenueErr error

	lastRange  models.DateRange
	lastTerm   string
	lastPeriod string
	lastCustom models.DateRange
	resets     int
}

func (m *mockHistory) FetchHistory(ctx context.Context, rng models.DateRange) error {
	m.lastRange = rng
	return m.fetchErr
}
func (m *mockHistory) ResetHistory(ctx context.Context) error {
	m.resets++
	return m.resetErr
}
func (m *mockHistory) SearchHistory(term string) error {
	m.lastTerm = term
	return m.searchErr
}
func (m *mockHistory) FetchRevenue(ctx context.Context, period string, custom models.DateRange) (service.RevenueView, error) {
	m.lastPeriod = period
	m.lastCustom = custom
	return m.revenue, m.revenueErr
}
func (m *mockHistory) WarmHistory(ctx context.Context) error { return nil }

type mockVehicles struct {
	list    []models.RegisteredVehicle
	listErr error
	addOut  service.Outcome
	addErr  error
	delOut  service.Outcome
	delErr  error

	lastInput     models.VehicleInput
	lastPlate     string
	lastConfirmed bool
}

func (m *mockVehicles) ListVehicles(ctx context.Context) ([]models.RegisteredVehicle, error) {
	return m.list, m.listErr
}
func (m *mockVehicles) AddVehicle(ctx context.Context, in models.VehicleInput) (service.Outcome, error) {
	m.lastInput = in
	return m.addOut, m.addErr
}
func (m *mockVehicles) RemoveVehicle(ctx context.Context, plate string, confirmed bool) (service.Outcome, error) {
	m.lastPlate = plate
	m.lastConfirmed = confirmed
	return m.delOut, m.delErr
}

type mockControl struct {
	out        service.Outcome
	err        error
	lastAction string
}

func (m *mockControl) Trigger(ctx context.Context, action string) (service.Outcome, error) {
	m.lastAction = action
	return m.out, m.err
}

type mockJournal struct {
	resp     []models.JournalEntry
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockJournal) Entries(ctx context.Context, f service.LogFilter) ([]models.JournalEntry, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}
func (m *mockJournal) RunRetention(ctx context.Context, keep, every time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts Options) *gin.Engine {
	h := NewHandler(s, nil, opts)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func doRequest(r http.Handler, method, target, body string, hdr http.Header) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
}
