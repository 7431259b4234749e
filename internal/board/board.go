package board

import (
	"time"

	"parking_kiosk/internal/models"
)

const (
	defaultRevenueTitle = "Doanh Thu"
	sensorUpdatedPrefix = "Cập nhật: "
	clockLayout         = "15:04:05"
)

// Board is the kiosk's whole view state. It is owned by a single goroutine;
// readers get copies through Snapshot.
type Board struct {
	f      *Formatter
	charts *ChartRenderer

	version    uint64
	indicators map[Channel]Indicator

	live          *LivePanel
	slots         []Slot
	freeLabel     string
	sensorUpdated string

	history      []models.TransactionRecord
	filter       models.DateRange
	search       string
	rows         []Row
	revenue      Revenue
	revenueTitle string
	chart        *Chart

	vehicles []VehicleRow
}

// New returns an empty board with the default indicators.
func New(f *Formatter) *Board {
	return &Board{
		f:            f,
		charts:       NewChartRenderer(f),
		indicators:   defaultIndicators(),
		revenueTitle: defaultRevenueTitle,
		rows:         []Row{},
	}
}

// Formatter returns the board's locale formatter.
func (b *Board) Formatter() *Formatter { return b.f }

// Touch marks the board as changed.
func (b *Board) Touch() { b.version++ }

// ApplyLive renders a new_log payload into the live card.
func (b *Board) ApplyLive(rec models.TransactionRecord, now time.Time) {
	p := BuildLivePanel(rec, now, b.f)
	b.live = &p
}

// ApplySensor renders a sensor_update payload. Slots and air quality are only
// touched when present; the "updated" label always moves.
func (b *Board) ApplySensor(r models.SensorReading, now time.Time) {
	if r.Slots != nil {
		b.slots, b.freeLabel = BuildSlots(r.Slots)
	}
	if r.MQ135 != nil {
		text, sev := ClassifyAir(*r.MQ135)
		b.SetStatus(ChannelMQ135, text, sev)
	}
	b.sensorUpdated = sensorUpdatedPrefix + now.Format(clockLayout)
}

// ApplyHistory replaces the cached history and re-renders the table, revenue
// and chart from the same payload. Any plate search is cleared.
func (b *Board) ApplyHistory(rng models.DateRange, records []models.TransactionRecord) {
	b.history = records
	b.filter = rng
	b.search = ""
	b.rows = RenderTable(records, b.f)
	b.revenue = ComputeRevenue(records)
	b.chart = b.charts.Render(BuildSeries(records))
}

// Search re-renders only the table from the cached history.
func (b *Board) Search(term string) {
	b.search = term
	b.rows = RenderTable(FilterByPlate(b.history, term), b.f)
}

// SetFilter records the active date range before its fetch completes.
func (b *Board) SetFilter(rng models.DateRange) { b.filter = rng }

// Filter returns the active date range; the zero range means no filter.
func (b *Board) Filter() models.DateRange { return b.filter }

// History returns the cached records of the last accepted fetch.
func (b *Board) History() []models.TransactionRecord { return b.history }

// SetRevenueTitle sets the label above the revenue total.
func (b *Board) SetRevenueTitle(title string) { b.revenueTitle = title }

// RevenueTitle is the current revenue heading.
func (b *Board) RevenueTitle() string { return b.revenueTitle }

// SetVehicles replaces the registered-vehicle table.
func (b *Board) SetVehicles(list []models.RegisteredVehicle) { b.vehicles = RenderVehicles(list) }

// Snapshot is an immutable copy of the board for readers.
type Snapshot struct {
	Version       uint64                `json:"version"`
	Indicators    map[Channel]Indicator `json:"indicators"`
	Live          *LivePanel            `json:"live,omitempty"`
	Slots         []Slot                `json:"slots"`
	FreeLabel     string                `json:"free_label"`
	SensorUpdated string                `json:"sensor_updated"`
	Filter        models.DateRange      `json:"filter"`
	Search        string                `json:"search,omitempty"`
	Rows          []Row                 `json:"rows"`
	Revenue       Revenue               `json:"revenue"`
	RevenueTotal  string                `json:"revenue_total"`
	RevenueTitle  string                `json:"revenue_title"`
	Chart         *Chart                `json:"chart,omitempty"`
	Vehicles      []VehicleRow          `json:"vehicles"`
}

// Snapshot copies the current state. Slices are replaced wholesale on every
// update and never mutated in place, so they are shared rather than copied.
func (b *Board) Snapshot() Snapshot {
	ind := make(map[Channel]Indicator, len(b.indicators))
	for k, v := range b.indicators {
		ind[k] = v
	}
	s := Snapshot{
		Version:       b.version,
		Indicators:    ind,
		Slots:         b.slots,
		FreeLabel:     b.freeLabel,
		SensorUpdated: b.sensorUpdated,
		Filter:        b.filter,
		Search:        b.search,
		Rows:          b.rows,
		Revenue:       b.revenue,
		RevenueTotal:  b.f.Money(b.revenue.Total),
		RevenueTitle:  b.revenueTitle,
		Vehicles:      b.vehicles,
	}
	if b.live != nil {
		p := *b.live
		s.Live = &p
	}
	if b.chart != nil {
		c := *b.chart
		s.Chart = &c
	}
	return s
}
