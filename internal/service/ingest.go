package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"parking_kiosk/internal/clock"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/metrics"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/push"
	"parking_kiosk/internal/repository"
)

// IngestService journals every push event and turns it into a dispatcher message.
type IngestService struct {
	journal repository.JournalRepo
	d       Dispatcher
	clk     clock.Clock
	log     *logger.Logger
}

func NewIngestService(journal repository.JournalRepo, d Dispatcher, clk clock.Clock, log *logger.Logger) *IngestService {
	return &IngestService{journal: journal, d: d, clk: clk, log: log}
}

// Deliver implements push.Sink. Every event is journaled. Undecodable events
// never reach the board, except sensor updates, which still post whatever
// part of the reading was usable.
func (s *IngestService) Deliver(ctx context.Context, ev push.Event) {
	metrics.PushEventsTotal.WithLabelValues(ev.Name).Inc()

	msg, desc, err := decodeEvent(ev)
	entry := models.JournalEntry{
		ReceivedAt:  s.clk.Now(),
		Type:        ev.Name,
		Description: desc,
	}
	if len(ev.Payload) > 0 {
		entry.Payload = ev.Payload
	}
	if jerr := s.journal.Append(ctx, entry); jerr != nil {
		s.log.Errorw("journal_append_failed", "type", ev.Name, "err", jerr)
	}

	if err != nil {
		s.log.Errorw("push_event_invalid", "type", ev.Name, "err", err)
	}
	if msg == nil {
		return
	}
	switch msg.(type) {
	case dispatch.Connected:
		metrics.PushConnected.Set(1)
	case dispatch.Disconnected:
		metrics.PushConnected.Set(0)
	}
	if err := s.d.Post(msg); err != nil {
		s.log.Errorw("push_event_dropped", "type", ev.Name, "err", err)
	}
}

// decodeEvent maps an event to its dispatcher message and a journal description.
func decodeEvent(ev push.Event) (dispatch.Message, string, error) {
	switch ev.Name {
	case push.EventConnect:
		return dispatch.Connected{}, "push channel up", nil
	case push.EventDisconnect:
		return dispatch.Disconnected{}, "push channel down", nil
	case push.EventNewLog:
		var rec models.TransactionRecord
		if err := json.Unmarshal(ev.Payload, &rec); err != nil {
			return nil, "undecodable new_log", fmt.Errorf("decode new_log: %w", err)
		}
		return dispatch.NewLog{Record: rec}, strings.TrimSpace(rec.Plate + " " + rec.Status), nil
	case push.EventSensorUpdate:
		// a sensor event is a heartbeat even when its readings are unusable
		r, err := models.DecodeSensorReading(ev.Payload)
		if err != nil {
			desc := "undecodable sensor_update"
			var bad *models.BadFieldsError
			if errors.As(err, &bad) {
				desc = describeReading(r) + " (partial)"
			}
			return dispatch.SensorUpdate{Reading: r}, strings.TrimSpace(desc), fmt.Errorf("decode sensor_update: %w", err)
		}
		return dispatch.SensorUpdate{Reading: r}, describeReading(r), nil
	default:
		return nil, "unknown event " + ev.Name, fmt.Errorf("unknown event %q", ev.Name)
	}
}

func describeReading(r models.SensorReading) string {
	var parts []string
	if r.Slots != nil {
		busy := 0
		for _, o := range r.Slots {
			if o {
				busy++
			}
		}
		parts = append(parts, fmt.Sprintf("slots %d/%d busy", busy, len(r.Slots)))
	}
	if r.MQ135 != nil {
		parts = append(parts, fmt.Sprintf("mq135=%d", *r.MQ135))
	}
	if len(parts) == 0 {
		return "empty reading"
	}
	return strings.Join(parts, ", ")
}
