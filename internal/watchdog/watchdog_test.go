package watchdog

import (
	"testing"
	"time"

	"parking_kiosk/internal/clock"
)

type expiry struct {
	name string
	gen  uint64
}

func newTestWatchdog(t *testing.T) (*Watchdog, *clock.Virtual, chan expiry) {
	t.Helper()
	clk := clock.NewVirtual(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	fired := make(chan expiry, 8)
	w := New("camera", 5*time.Second, clk, func(name string, gen uint64) {
		fired <- expiry{name: name, gen: gen}
	})
	return w, clk, fired
}

func expectFire(t *testing.T, fired <-chan expiry) expiry {
	t.Helper()
	select {
	case e := <-fired:
		return e
	case <-time.After(time.Second):
		t.Fatalf("expected expiry, got none")
		return expiry{}
	}
}

func expectNoFire(t *testing.T, fired <-chan expiry) {
	t.Helper()
	select {
	case e := <-fired:
		t.Fatalf("unexpected expiry %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchdog_FiresOnceAfterSilence(t *testing.T) {
	w, clk, fired := newTestWatchdog(t)
	if w.State() != StateIdle {
		t.Fatalf("initial state=%q", w.State())
	}

	gen := w.Heartbeat()
	if w.State() != StateArmed {
		t.Fatalf("state after heartbeat=%q", w.State())
	}

	clk.Advance(5 * time.Second)
	e := expectFire(t, fired)
	if e.name != "camera" || e.gen != gen {
		t.Fatalf("unexpected expiry %+v (gen %d)", e, gen)
	}
	if !w.IsCurrent(gen) {
		t.Fatalf("expected gen %d to be current", gen)
	}
	if w.State() != StateExpired {
		t.Fatalf("state after expiry=%q", w.State())
	}

	clk.Advance(30 * time.Second)
	expectNoFire(t, fired)
}

func TestWatchdog_HeartbeatReplacesDeadline(t *testing.T) {
	w, clk, fired := newTestWatchdog(t)

	w.Heartbeat()
	clk.Advance(4 * time.Second)
	second := w.Heartbeat()

	// the first deadline elapses here; it must not fire
	clk.Advance(4 * time.Second)
	expectNoFire(t, fired)

	clk.Advance(time.Second)
	e := expectFire(t, fired)
	if e.gen != second {
		t.Fatalf("fired gen=%d, want %d", e.gen, second)
	}
}

func TestWatchdog_IsCurrentFalseAfterNewHeartbeat(t *testing.T) {
	w, clk, fired := newTestWatchdog(t)

	gen := w.Heartbeat()
	clk.Advance(5 * time.Second)
	expectFire(t, fired)

	w.Heartbeat()
	if w.IsCurrent(gen) {
		t.Fatalf("expiry raced by a heartbeat must not be current")
	}
	if w.State() != StateArmed {
		t.Fatalf("state=%q, want armed", w.State())
	}
}

func TestWatchdog_Stop(t *testing.T) {
	w, clk, fired := newTestWatchdog(t)

	w.Heartbeat()
	w.Stop()
	clk.Advance(10 * time.Second)
	expectNoFire(t, fired)
}

func TestWatchdog_DefaultTimeout(t *testing.T) {
	w := New("sensor", 0, clock.Real{}, func(string, uint64) {})
	if w.timeout != DefaultTimeout {
		t.Fatalf("timeout=%v, want %v", w.timeout, DefaultTimeout)
	}
}
