package push

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"parking_kiosk/internal/models"
)

// ----------- Simulation constants -----------
const (
	SimSlots          = 4   // parking bays reported by the sensor board
	SimLogEvery       = 5   // ticks between gate events
	SimAirBase        = 150 // clean-air MQ135 reading
	SimAirSpread      = 320 // random spread above base
	SimFeePerVisit    = 5000
	SimCaptureURLBase = "/static/captures/"
	SimRFIDIcon       = "/static/img/rfid_icon.png"
)

// Simulator generates a plausible event stream when no backend is reachable.
type Simulator struct {
	rnd    *rand.Rand
	slots  []bool
	inside []string // plates currently parked, oldest first
	ticks  int
	tick   time.Duration
}

// NewSimulator returns a simulator seeded with seed, so runs are reproducible.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		rnd:   rand.New(rand.NewSource(seed)),
		slots: make([]bool, SimSlots),
		tick:  time.Second,
	}
}

// WithTick sets the interval Run steps at. Non-positive values are ignored.
func (s *Simulator) WithTick(d time.Duration) *Simulator {
	if d > 0 {
		s.tick = d
	}
	return s
}

// Run ticks at the given interval until ctx is canceled.
func (s *Simulator) Run(ctx context.Context, sink Sink) error {
	return s.RunEvery(ctx, sink, s.tick)
}

// RunEvery is Run with an explicit tick.
func (s *Simulator) RunEvery(ctx context.Context, sink Sink, tick time.Duration) error {
	sink.Deliver(ctx, Event{Name: EventConnect})

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			for _, ev := range s.Step(now) {
				sink.Deliver(ctx, ev)
			}
		}
	}
}

// Step advances the simulation by one tick and returns the events it produced.
func (s *Simulator) Step(now time.Time) []Event {
	s.ticks++
	var out []Event

	if s.ticks%SimLogEvery == 0 {
		rec := s.nextGateEvent(now)
		if ev, err := newEvent(EventNewLog, rec); err == nil {
			out = append(out, ev)
		}
	}

	if ev, err := newEvent(EventSensorUpdate, s.nextReading()); err == nil {
		out = append(out, ev)
	}
	return out
}

// nextReading flips at most one bay and samples the air sensor.
func (s *Simulator) nextReading() models.SensorReading {
	if s.rnd.Intn(3) == 0 {
		i := s.rnd.Intn(len(s.slots))
		s.slots[i] = !s.slots[i]
	}
	occ := make([]models.Occupancy, len(s.slots))
	free := 0
	for i, busy := range s.slots {
		occ[i] = models.Occupancy(busy)
		if !busy {
			free++
		}
	}
	air := models.AirQuality(SimAirBase + s.rnd.Intn(SimAirSpread))
	return models.SensorReading{Slots: occ, FreeSlots: &free, MQ135: &air}
}

// nextGateEvent alternates between arrivals, departures and the occasional denial.
func (s *Simulator) nextGateEvent(now time.Time) models.TransactionRecord {
	ts := now.Format("2006-01-02 15:04:05")

	switch {
	case len(s.inside) > 0 && s.rnd.Intn(2) == 0:
		plate := s.inside[0]
		s.inside = s.inside[1:]
		rec := models.TransactionRecord{
			Plate:  plate,
			Status: "Out",
			Action: fmt.Sprintf("EXIT (Fee: %d)", SimFeePerVisit),
			Fee:    SimFeePerVisit,
			Time:   ts,
			Image:  s.imageFor(plate),
		}
		return rec
	case s.rnd.Intn(6) == 0:
		plate := s.randomPlate()
		return models.TransactionRecord{Plate: plate, Status: "DENIED", Action: "ENTRY (Cam)", Time: ts, Image: s.imageFor(plate)}
	default:
		plate := s.randomPlate()
		if s.rnd.Intn(3) == 0 {
			plate = "RFID: " + strings.ToUpper(uuid.NewString()[:8])
		}
		s.inside = append(s.inside, plate)
		return models.TransactionRecord{Plate: plate, Status: "Allowed", Action: "ENTRY", Time: ts, Image: s.imageFor(plate)}
	}
}

func (s *Simulator) randomPlate() string {
	return fmt.Sprintf("%02d%c-%03d.%02d", 29+s.rnd.Intn(23), 'A'+rune(s.rnd.Intn(6)), s.rnd.Intn(1000), s.rnd.Intn(100))
}

func (s *Simulator) imageFor(plate string) string {
	if strings.HasPrefix(plate, "RFID") {
		return SimRFIDIcon
	}
	return SimCaptureURLBase + strings.NewReplacer("-", "", ".", "").Replace(plate) + ".jpg"
}
