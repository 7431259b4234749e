package service

import (
	"parking_kiosk/internal/board"
)

type MonitoringService struct {
	d Dispatcher
}

func NewMonitoringService(d Dispatcher) *MonitoringService {
	return &MonitoringService{d: d}
}

// Board returns the last published board.
func (s *MonitoringService) Board() board.Snapshot {
	return s.d.Snapshot()
}

// BoardChanged returns a channel closed on the next board publish.
func (s *MonitoringService) BoardChanged() <-chan struct{} {
	return s.d.Changed()
}
