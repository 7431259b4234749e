package service

import (
	"context"
	"time"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/clock"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/push"
	"parking_kiosk/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Monitoring exposes the read-only board.
type Monitoring interface {
	Board() board.Snapshot
	BoardChanged() <-chan struct{}
}

// History drives the history table, plate search and revenue panel.
type History interface {
	FetchHistory(ctx context.Context, rng models.DateRange) error
	ResetHistory(ctx context.Context) error
	SearchHistory(term string) error
	FetchRevenue(ctx context.Context, period string, custom models.DateRange) (RevenueView, error)
	WarmHistory(ctx context.Context) error
}

// Vehicles manages the monthly-pass list on the backend.
type Vehicles interface {
	ListVehicles(ctx context.Context) ([]models.RegisteredVehicle, error)
	AddVehicle(ctx context.Context, in models.VehicleInput) (Outcome, error)
	RemoveVehicle(ctx context.Context, plate string, confirmed bool) (Outcome, error)
}

// Control opens the barriers by hand.
type Control interface {
	Trigger(ctx context.Context, action string) (Outcome, error)
}

// Journal exposes the recorded push events.
type Journal interface {
	Entries(ctx context.Context, f LogFilter) ([]models.JournalEntry, error)
	RunRetention(ctx context.Context, keep, every time.Duration)
}

// Ingestor accepts push-channel events.
type Ingestor interface {
	push.Sink
}

// Backend is the subset of the backend client the services call.
type Backend interface {
	Registered(ctx context.Context) ([]models.RegisteredVehicle, error)
	AddRegistered(ctx context.Context, in models.VehicleInput) (models.APIResult, error)
	DeleteRegistered(ctx context.Context, plate string) (models.APIResult, error)
	Control(ctx context.Context, action string) (models.APIResult, error)
}

// Dispatcher is the board owner the services post to.
type Dispatcher interface {
	Post(m dispatch.Message) error
	Snapshot() board.Snapshot
	Changed() <-chan struct{}
	FetchHistory(ctx context.Context, rng models.DateRange) error
	FetchRevenue(ctx context.Context, rng models.DateRange, title string) error
	Warm(cache models.HistoryCache) error
}

type Service struct {
	Monitoring
	History
	Vehicles
	Control
	Journal
	Ingestor
	Authorization
}

// Deps carries everything NewService wires together.
type Deps struct {
	Repos      *repository.Repository
	Backend    Backend
	Dispatcher Dispatcher
	Clock      clock.Clock
	Auth       AuthConfig
	Log        *logger.Logger
}

func NewService(d Deps) *Service {
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	return &Service{
		Monitoring:    NewMonitoringService(d.Dispatcher),
		History:       NewHistoryService(d.Dispatcher, d.Repos.HistoryCache, d.Clock),
		Vehicles:      NewVehicleService(d.Backend, d.Dispatcher, d.Log),
		Control:       NewControlService(d.Backend, d.Log),
		Journal:       NewJournalService(d.Repos.Journal, d.Log),
		Ingestor:      NewIngestService(d.Repos.Journal, d.Dispatcher, d.Clock, d.Log),
		Authorization: NewAuthService(d.Repos.Auth, d.Auth),
	}
}
