package watchdog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"parking_kiosk/internal/clock"
)

// DefaultTimeout is how long a channel may stay silent before it is considered down.
const DefaultTimeout = 5 * time.Second

// Lifecycle states and events.
const (
	StateIdle    = "idle"
	StateArmed   = "armed"
	StateExpired = "expired"

	EventHeartbeat = "heartbeat"
	EventExpire    = "expire"
)

// ExpireFunc is called from the timer goroutine when a deadline elapses.
// gen identifies the heartbeat that armed it; pass it back to IsCurrent
// before acting, since a newer heartbeat may have raced the expiry.
type ExpireFunc func(name string, gen uint64)

// Watchdog is a single-slot liveness timer: every Heartbeat replaces the
// pending deadline, and a deadline that elapses fires exactly once.
type Watchdog struct {
	name     string
	timeout  time.Duration
	clk      clock.Clock
	onExpire ExpireFunc

	mu     sync.Mutex
	gen    uint64
	cancel chan struct{}
	fsm    *fsm.FSM
}

func New(name string, timeout time.Duration, clk clock.Clock, onExpire ExpireFunc) *Watchdog {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Watchdog{
		name:     name,
		timeout:  timeout,
		clk:      clk,
		onExpire: onExpire,
		fsm: fsm.NewFSM(
			StateIdle,
			fsm.Events{
				{Name: EventHeartbeat, Src: []string{StateIdle, StateArmed, StateExpired}, Dst: StateArmed},
				{Name: EventExpire, Src: []string{StateArmed}, Dst: StateExpired},
			},
			fsm.Callbacks{},
		),
	}
}

// Name returns the monitored channel name.
func (w *Watchdog) Name() string { return w.name }

// State returns the lifecycle state.
func (w *Watchdog) State() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fsm.Current()
}

// Heartbeat cancels any pending deadline and arms a new one. It returns the
// generation of the new deadline.
func (w *Watchdog) Heartbeat() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		close(w.cancel)
	}
	_ = transition(w.fsm, EventHeartbeat)

	w.gen++
	gen := w.gen
	cancel := make(chan struct{})
	w.cancel = cancel
	// Registered synchronously so the deadline counts from this call, not from
	// whenever the goroutine is scheduled.
	deadline := w.clk.After(w.timeout)

	go func() {
		select {
		case <-cancel:
		case <-deadline:
			if w.expire(gen) {
				w.onExpire(w.name, gen)
			}
		}
	}()
	return gen
}

func (w *Watchdog) expire(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return false
	}
	w.cancel = nil
	return transition(w.fsm, EventExpire) == nil
}

// IsCurrent reports whether gen is still the latest deadline and has expired.
func (w *Watchdog) IsCurrent(gen uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return gen == w.gen && w.fsm.Is(StateExpired)
}

// Stop cancels the pending deadline without firing it.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		close(w.cancel)
		w.cancel = nil
	}
	w.gen++
}

// transition fires an event, treating a same-state transition as success.
func transition(f *fsm.FSM, event string) error {
	err := f.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}
