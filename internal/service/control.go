package service

import (
	"context"
	"fmt"

	"parking_kiosk/internal/logger"
)

// Manual barrier actions.
const (
	ActionOpenEntry = "open_entry"
	ActionOpenExit  = "open_exit"
)

type ControlService struct {
	backend Backend
	log     *logger.Logger
}

func NewControlService(backend Backend, log *logger.Logger) *ControlService {
	return &ControlService{backend: backend, log: log}
}

// Trigger sends a manual action. The backend's message is reported verbatim;
// any transport or decoding failure yields a fixed connection-error message
// alongside the error.
func (s *ControlService) Trigger(ctx context.Context, action string) (Outcome, error) {
	switch action {
	case ActionOpenEntry, ActionOpenExit:
	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	res, err := s.backend.Control(ctx, action)
	if err != nil {
		return Outcome{Message: msgBackendFailure}, fmt.Errorf("control %s: %w", action, err)
	}
	s.log.Infow("control_sent", "action", action, "status", res.Status, "msg", res.Msg)
	return Outcome{OK: res.OK(), Message: res.Msg}, nil
}
