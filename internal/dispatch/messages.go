package dispatch

import (
	"time"

	"parking_kiosk/internal/models"
)

// Message is anything the dispatcher consumes. Only this package defines
// the internal ones; the exported ones are posted by push sources and services.
type Message interface {
	message()
}

// Connected reports that the push channel is up.
type Connected struct{}

// Disconnected reports that the push channel dropped.
type Disconnected struct{}

// NewLog is an entry/exit event from the gate.
type NewLog struct {
	Record models.TransactionRecord
}

// SensorUpdate is a parking-slot and air-quality reading.
type SensorUpdate struct {
	Reading models.SensorReading
}

// Search filters the cached history by plate without refetching.
type Search struct {
	Term string
}

// VehiclesLoaded replaces the registered-vehicle table.
type VehiclesLoaded struct {
	Vehicles []models.RegisteredVehicle
}

type expired struct {
	watch string
	gen   uint64
}

type fetchRequest struct {
	rng   models.DateRange
	title string // empty keeps the current revenue title
	done  chan error
}

type historyResult struct {
	seq     uint64
	rng     models.DateRange
	records []models.TransactionRecord
	err     error
	elapsed time.Duration
	done    chan error
}

type warm struct {
	cache models.HistoryCache
}

func (Connected) message()      {}
func (Disconnected) message()   {}
func (NewLog) message()         {}
func (SensorUpdate) message()   {}
func (Search) message()         {}
func (VehiclesLoaded) message() {}
func (expired) message()        {}
func (fetchRequest) message()   {}
func (historyResult) message()  {}
func (warm) message()           {}
