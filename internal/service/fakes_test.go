package service

import (
	"context"
	"sync"
	"time"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/models"
)

// fakeDispatcher records everything the services send to the board owner.
type fakeDispatcher struct {
	mu       sync.Mutex
	posted   []dispatch.Message
	fetches  []models.DateRange
	revenues []string
	warmed   []models.HistoryCache
	fetchErr error
	postErr  error
	snap     board.Snapshot
	changed  chan struct{}
}

func (f *fakeDispatcher) Post(m dispatch.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return f.postErr
	}
	f.posted = append(f.posted, m)
	return nil
}

func (f *fakeDispatcher) Snapshot() board.Snapshot { return f.snap }

func (f *fakeDispatcher) Changed() <-chan struct{} { return f.changed }

func (f *fakeDispatcher) FetchHistory(ctx context.Context, rng models.DateRange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches = append(f.fetches, rng)
	return f.fetchErr
}

func (f *fakeDispatcher) FetchRevenue(ctx context.Context, rng models.DateRange, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches = append(f.fetches, rng)
	f.revenues = append(f.revenues, title)
	return f.fetchErr
}

func (f *fakeDispatcher) Warm(c models.HistoryCache) error {
	f.warmed = append(f.warmed, c)
	return nil
}

func (f *fakeDispatcher) messages() []dispatch.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dispatch.Message(nil), f.posted...)
}

// fakeBackend is a scripted Backend.
type fakeBackend struct {
	list       []models.RegisteredVehicle
	listErr    error
	addRes     models.APIResult
	addErr     error
	delRes     models.APIResult
	delErr     error
	controlRes models.APIResult
	controlErr error

	listCalls int
	added     []models.VehicleInput
	deleted   []string
	actions   []string
}

func (b *fakeBackend) Registered(ctx context.Context) ([]models.RegisteredVehicle, error) {
	b.listCalls++
	return b.list, b.listErr
}

func (b *fakeBackend) AddRegistered(ctx context.Context, in models.VehicleInput) (models.APIResult, error) {
	b.added = append(b.added, in)
	return b.addRes, b.addErr
}

func (b *fakeBackend) DeleteRegistered(ctx context.Context, plate string) (models.APIResult, error) {
	b.deleted = append(b.deleted, plate)
	return b.delRes, b.delErr
}

func (b *fakeBackend) Control(ctx context.Context, action string) (models.APIResult, error) {
	b.actions = append(b.actions, action)
	return b.controlRes, b.controlErr
}

// fakeJournalRepo is a minimal stub that satisfies repository.JournalRepo.
type fakeJournalRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	gotType string

	entries   []models.JournalEntry
	appended  []models.JournalEntry
	err       error
	appendErr error

	calls int
}

func (f *fakeJournalRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.JournalEntry, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.entries, f.err
}

func (f *fakeJournalRepo) Append(ctx context.Context, e models.JournalEntry) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeJournalRepo) Prune(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

// fakeCacheRepo is a stub repository.HistoryCacheRepo.
type fakeCacheRepo struct {
	cache models.HistoryCache
	err   error
}

func (f *fakeCacheRepo) Save(ctx context.Context, c models.HistoryCache) error {
	f.cache = c
	return f.err
}

func (f *fakeCacheRepo) Load(ctx context.Context) (models.HistoryCache, error) {
	return f.cache, f.err
}
