package service

import (
	"context"
	"fmt"
	"strings"

	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
)

const (
	msgVehicleAdded   = "Đăng ký thành công!"
	msgVehicleFailed  = "Không thể thêm"
	msgBackendFailure = "Lỗi kết nối Server!"
	errorPrefix       = "Lỗi: "
)

type VehicleService struct {
	backend Backend
	d       Dispatcher
	log     *logger.Logger
}

func NewVehicleService(backend Backend, d Dispatcher, log *logger.Logger) *VehicleService {
	return &VehicleService{backend: backend, d: d, log: log}
}

// ListVehicles fetches the registered list and renders it on the board.
func (s *VehicleService) ListVehicles(ctx context.Context) ([]models.RegisteredVehicle, error) {
	list, err := s.backend.Registered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registered vehicles: %w", err)
	}
	if err := s.d.Post(dispatch.VehiclesLoaded{Vehicles: list}); err != nil {
		return nil, err
	}
	return list, nil
}

// AddVehicle registers a monthly pass. A blank plate is rejected before any
// request is sent.
func (s *VehicleService) AddVehicle(ctx context.Context, in models.VehicleInput) (Outcome, error) {
	in.Plate = strings.TrimSpace(in.Plate)
	in.Owner = strings.TrimSpace(in.Owner)
	if in.Plate == "" {
		return Outcome{}, ErrPlateRequired
	}

	res, err := s.backend.AddRegistered(ctx, in)
	if err != nil {
		return Outcome{Message: msgBackendFailure}, fmt.Errorf("add vehicle %q: %w", in.Plate, err)
	}
	if !res.OK() {
		msg := res.Msg
		if msg == "" {
			msg = msgVehicleFailed
		}
		return Outcome{Message: errorPrefix + msg}, nil
	}

	s.refresh(ctx)
	return Outcome{OK: true, Message: msgVehicleAdded, FormCleared: true}, nil
}

// RemoveVehicle deletes a monthly pass once the operator confirmed it. The
// list is refreshed whatever the backend answered.
func (s *VehicleService) RemoveVehicle(ctx context.Context, plate string, confirmed bool) (Outcome, error) {
	if !confirmed {
		return Outcome{}, ErrNotConfirmed
	}

	res, err := s.backend.DeleteRegistered(ctx, plate)
	s.refresh(ctx)
	if err != nil {
		return Outcome{Message: msgBackendFailure}, fmt.Errorf("delete vehicle %q: %w", plate, err)
	}
	if !res.OK() {
		return Outcome{Message: errorPrefix + res.Msg}, nil
	}
	return Outcome{OK: true, Message: res.Msg}, nil
}

func (s *VehicleService) refresh(ctx context.Context) {
	if _, err := s.ListVehicles(ctx); err != nil {
		s.log.Errorw("vehicle_list_refresh_failed", "err", err)
	}
}
