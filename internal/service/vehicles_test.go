package service

import (
	"context"
	"errors"
	"testing"

	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
)

func newVehicleService(b *fakeBackend, d *fakeDispatcher) *VehicleService {
	return NewVehicleService(b, d, logger.Get(logger.ErrorLevel))
}

func loadedCount(d *fakeDispatcher) int {
	n := 0
	for _, m := range d.messages() {
		if _, ok := m.(dispatch.VehiclesLoaded); ok {
			n++
		}
	}
	return n
}

func TestVehicleService_AddVehicle(t *testing.T) {
	t.Parallel()

	t.Run("blank plate never reaches the backend", func(t *testing.T) {
		t.Parallel()
		b, d := &fakeBackend{}, &fakeDispatcher{}
		_, err := newVehicleService(b, d).AddVehicle(context.Background(), models.VehicleInput{Plate: "   ", Owner: "An"})
		if !errors.Is(err, ErrPlateRequired) {
			t.Fatalf("err=%v, want ErrPlateRequired", err)
		}
		if len(b.added) != 0 {
			t.Fatalf("backend called: %+v", b.added)
		}
	})

	t.Run("ok clears form and refreshes list", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{
			addRes: models.APIResult{Status: "ok"},
			list:   []models.RegisteredVehicle{{Plate: "30A-12345"}},
		}
		d := &fakeDispatcher{}
		out, err := newVehicleService(b, d).AddVehicle(context.Background(), models.VehicleInput{Plate: " 30A-12345 ", Owner: "An", Type: "Car"})
		if err != nil {
			t.Fatalf("AddVehicle: %v", err)
		}
		if !out.OK || !out.FormCleared || out.Message != "Đăng ký thành công!" {
			t.Fatalf("outcome=%+v", out)
		}
		if b.added[0].Plate != "30A-12345" {
			t.Fatalf("plate not trimmed: %q", b.added[0].Plate)
		}
		if b.listCalls != 1 || loadedCount(d) != 1 {
			t.Fatalf("list refresh: calls=%d loaded=%d", b.listCalls, loadedCount(d))
		}
	})

	t.Run("rejection surfaces server message", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{addRes: models.APIResult{Status: "error", Msg: "Plate exists"}}
		d := &fakeDispatcher{}
		out, err := newVehicleService(b, d).AddVehicle(context.Background(), models.VehicleInput{Plate: "30A-12345"})
		if err != nil {
			t.Fatalf("AddVehicle: %v", err)
		}
		if out.OK || out.FormCleared || out.Message != "Lỗi: Plate exists" {
			t.Fatalf("outcome=%+v", out)
		}
		if b.listCalls != 0 {
			t.Fatalf("failed add must not refresh the list")
		}
	})

	t.Run("rejection without message uses fallback", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{addRes: models.APIResult{Status: "error"}}
		out, _ := newVehicleService(b, &fakeDispatcher{}).AddVehicle(context.Background(), models.VehicleInput{Plate: "30A"})
		if out.Message != "Lỗi: Không thể thêm" {
			t.Fatalf("message=%q", out.Message)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("refused")
		b := &fakeBackend{addErr: boom}
		out, err := newVehicleService(b, &fakeDispatcher{}).AddVehicle(context.Background(), models.VehicleInput{Plate: "30A"})
		if !errors.Is(err, boom) || out.Message != "Lỗi kết nối Server!" {
			t.Fatalf("out=%+v err=%v", out, err)
		}
	})
}

func TestVehicleService_RemoveVehicle(t *testing.T) {
	t.Parallel()

	t.Run("unconfirmed is rejected before any request", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{}
		_, err := newVehicleService(b, &fakeDispatcher{}).RemoveVehicle(context.Background(), "30A", false)
		if !errors.Is(err, ErrNotConfirmed) {
			t.Fatalf("err=%v", err)
		}
		if len(b.deleted) != 0 || b.listCalls != 0 {
			t.Fatalf("backend touched: deleted=%v lists=%d", b.deleted, b.listCalls)
		}
	})

	t.Run("refreshes even when delete fails", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{delErr: errors.New("refused")}
		d := &fakeDispatcher{}
		if _, err := newVehicleService(b, d).RemoveVehicle(context.Background(), "51F 123/45", true); err == nil {
			t.Fatalf("expected error")
		}
		if len(b.deleted) != 1 || b.deleted[0] != "51F 123/45" {
			t.Fatalf("deleted=%v", b.deleted)
		}
		if b.listCalls != 1 || loadedCount(d) != 1 {
			t.Fatalf("list must be refreshed: calls=%d loaded=%d", b.listCalls, loadedCount(d))
		}
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		b := &fakeBackend{delRes: models.APIResult{Status: "ok"}}
		out, err := newVehicleService(b, &fakeDispatcher{}).RemoveVehicle(context.Background(), "30A", true)
		if err != nil || !out.OK {
			t.Fatalf("out=%+v err=%v", out, err)
		}
	})
}

func TestVehicleService_ListVehicles(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{list: []models.RegisteredVehicle{{Plate: "A"}, {Plate: "B"}}}
	d := &fakeDispatcher{}
	list, err := newVehicleService(b, d).ListVehicles(context.Background())
	if err != nil || len(list) != 2 {
		t.Fatalf("list=%v err=%v", list, err)
	}
	msgs := d.messages()
	if v, ok := msgs[0].(dispatch.VehiclesLoaded); !ok || len(v.Vehicles) != 2 {
		t.Fatalf("posted=%+v", msgs)
	}

	b = &fakeBackend{listErr: errors.New("down")}
	d = &fakeDispatcher{}
	if _, err := newVehicleService(b, d).ListVehicles(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if len(d.messages()) != 0 {
		t.Fatalf("failed list must leave the board alone")
	}
}
