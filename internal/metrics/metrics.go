package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// PushEventsTotal counts push-channel events by type (connect, disconnect, new_log, sensor_update).
	PushEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_kiosk_push_events_total",
			Help: "Total number of push-channel events received from the backend.",
		},
		[]string{"type"},
	)

	// PushConnected is 1 while the push channel is up.
	PushConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parking_kiosk_push_connected",
			Help: "Push-channel connectivity (1=connected, 0=disconnected).",
		},
	)

	// WatchdogExpiriesTotal counts liveness deadlines that elapsed without a heartbeat.
	WatchdogExpiriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_kiosk_watchdog_expiries_total",
			Help: "Total number of watchdog expiries per channel.",
		},
		[]string{"watchdog"},
	)

	// HistoryFetchTotal counts history fetches by result: ok, error or stale.
	HistoryFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parking_kiosk_history_fetch_total",
			Help: "Total number of history fetches by result.",
		},
		[]string{"result"},
	)

	HistoryFetchLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parking_kiosk_history_fetch_latency_seconds",
			Help:    "Latency of GET /api/history against the backend.",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BoardVersion is the version of the last published board snapshot.
	BoardVersion = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parking_kiosk_board_version",
			Help: "Version of the last published board snapshot.",
		},
	)

	// StreamClients is the number of connected kiosk browsers.
	StreamClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parking_kiosk_stream_clients",
			Help: "Number of browsers subscribed to /ws.",
		},
	)
)

// Fetch results.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultStale = "stale"
)

func init() {
	prometheus.MustRegister(PushEventsTotal)
	prometheus.MustRegister(PushConnected)
	prometheus.MustRegister(WatchdogExpiriesTotal)
	prometheus.MustRegister(HistoryFetchTotal)
	prometheus.MustRegister(HistoryFetchLatency)
	prometheus.MustRegister(BoardVersion)
	prometheus.MustRegister(StreamClients)
}
