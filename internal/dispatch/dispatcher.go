package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"parking_kiosk/internal/board"
	"parking_kiosk/internal/clock"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/metrics"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/watchdog"
)

// Watchdog names.
const (
	WatchCamera = "camera"
	WatchSensor = "sensor"
)

const (
	inboxSize        = 64
	saveFlushTimeout = 2 * time.Second
)

// ErrStopped is returned when posting to a dispatcher that is no longer running.
var ErrStopped = errors.New("dispatcher stopped")

// HistorySource fetches transaction history from the backend.
type HistorySource interface {
	History(ctx context.Context, rng models.DateRange) ([]models.TransactionRecord, error)
}

// HistoryCache persists the last accepted history payload.
type HistoryCache interface {
	Save(ctx context.Context, cache models.HistoryCache) error
}

// Options tunes a Dispatcher. Zero values select defaults.
type Options struct {
	WatchdogTimeout time.Duration
	Clock           clock.Clock
	Cache           HistoryCache
}

// Dispatcher is the single owner of the board. Every event, timer expiry and
// fetch completion is processed in order on the goroutine running Run.
type Dispatcher struct {
	board  *board.Board
	source HistorySource
	cache  HistoryCache
	clk    clock.Clock
	log    *logger.Logger

	camera *watchdog.Watchdog
	sensor *watchdog.Watchdog

	inbox   chan Message
	saves   chan models.HistoryCache
	stopped chan struct{}
	runCtx  context.Context

	// owned by the Run goroutine
	seq      uint64
	accepted bool
	replies  []func()

	snapshot atomic.Pointer[board.Snapshot]
	mu       sync.Mutex
	changed  chan struct{}
}

func New(b *board.Board, source HistorySource, log *logger.Logger, opts Options) *Dispatcher {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	d := &Dispatcher{
		board:   b,
		source:  source,
		cache:   opts.Cache,
		clk:     clk,
		log:     log,
		inbox:   make(chan Message, inboxSize),
		saves:   make(chan models.HistoryCache, 1),
		stopped: make(chan struct{}),
		runCtx:  context.Background(),
		changed: make(chan struct{}),
	}
	d.camera = watchdog.New(WatchCamera, opts.WatchdogTimeout, clk, d.onExpire)
	d.sensor = watchdog.New(WatchSensor, opts.WatchdogTimeout, clk, d.onExpire)
	d.publish()
	return d
}

func (d *Dispatcher) onExpire(name string, gen uint64) {
	_ = d.Post(expired{watch: name, gen: gen})
}

// Run consumes the inbox until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.runCtx = ctx
	saverDone := make(chan struct{})
	go d.saveLoop(ctx, saverDone)
	defer func() {
		d.camera.Stop()
		d.sensor.Stop()
		close(d.stopped)
		<-saverDone
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-d.inbox:
			if d.handle(m) {
				d.board.Touch()
				d.publish()
			}
			d.flushReplies()
		}
	}
}

// Post enqueues m. It blocks while the inbox is full and fails once the
// dispatcher has stopped.
func (d *Dispatcher) Post(m Message) error {
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}
	select {
	case d.inbox <- m:
		return nil
	case <-d.stopped:
		return ErrStopped
	}
}

// Snapshot returns the last published board state.
func (d *Dispatcher) Snapshot() board.Snapshot {
	return *d.snapshot.Load()
}

// Changed returns a channel that is closed on the next publish.
func (d *Dispatcher) Changed() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.changed
}

func (d *Dispatcher) publish() {
	s := d.board.Snapshot()
	d.snapshot.Store(&s)
	metrics.BoardVersion.Set(float64(s.Version))

	d.mu.Lock()
	close(d.changed)
	d.changed = make(chan struct{})
	d.mu.Unlock()
}

// flushReplies wakes fetch waiters once the board they wait on is published.
func (d *Dispatcher) flushReplies() {
	for _, r := range d.replies {
		r()
	}
	d.replies = d.replies[:0]
}

// FetchHistory requests rng (the zero range means the default set) and waits
// until the result has been applied, dropped as stale, or failed.
func (d *Dispatcher) FetchHistory(ctx context.Context, rng models.DateRange) error {
	return d.fetch(ctx, fetchRequest{rng: rng})
}

// FetchRevenue is FetchHistory for a revenue period; title replaces the
// revenue heading as soon as the request is issued.
func (d *Dispatcher) FetchRevenue(ctx context.Context, rng models.DateRange, title string) error {
	return d.fetch(ctx, fetchRequest{rng: rng, title: title})
}

func (d *Dispatcher) fetch(ctx context.Context, req fetchRequest) error {
	req.done = make(chan error, 1)
	if err := d.Post(req); err != nil {
		return err
	}
	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
}

// Warm shows a previously cached history until the first fetch completes.
func (d *Dispatcher) Warm(cache models.HistoryCache) error {
	return d.Post(warm{cache: cache})
}

// handle applies m to the board and reports whether anything changed.
func (d *Dispatcher) handle(m Message) bool {
	switch m := m.(type) {
	case Connected:
		d.board.SetStatus(board.ChannelServer, "Online", board.SeverityGreen)
	case Disconnected:
		d.board.SetStatus(board.ChannelServer, "Offline", board.SeverityRed)
		d.board.SetStatus(board.ChannelSensor, "Mất kết nối", board.SeverityRed)
	case NewLog:
		d.onNewLog(m.Record)
	case SensorUpdate:
		d.sensor.Heartbeat()
		d.board.SetStatus(board.ChannelSensor, "Hoạt động", board.SeverityGreen)
		d.board.ApplySensor(m.Reading, d.clk.Now())
	case Search:
		d.board.Search(m.Term)
	case VehiclesLoaded:
		d.board.SetVehicles(m.Vehicles)
	case expired:
		return d.onExpired(m)
	case fetchRequest:
		changed := false
		if m.title != "" && m.title != d.board.RevenueTitle() {
			d.board.SetRevenueTitle(m.title)
			changed = true
		}
		if d.issueFetch(m.rng, m.done) {
			changed = true
		}
		return changed
	case historyResult:
		return d.onHistory(m)
	case warm:
		if d.accepted {
			return false
		}
		d.board.ApplyHistory(m.cache.Range, m.cache.Records)
	default:
		d.log.Errorw("dispatch_unknown_message", "type", m)
		return false
	}
	return true
}

func (d *Dispatcher) onNewLog(rec models.TransactionRecord) {
	d.camera.Heartbeat()
	d.board.SetStatus(board.ChannelCam, "Đang xử lý", board.SeverityGreen)
	d.board.ApplyLive(rec, d.clk.Now())

	// a filtered view is not disturbed by live traffic
	if !d.board.Filter().Filtered() {
		d.issueFetch(models.DateRange{}, nil)
	}
}

func (d *Dispatcher) onExpired(m expired) bool {
	switch m.watch {
	case WatchCamera:
		if !d.camera.IsCurrent(m.gen) {
			return false
		}
		d.board.SetStatus(board.ChannelCam, "Sẵn sàng", board.SeverityGreen)
	case WatchSensor:
		if !d.sensor.IsCurrent(m.gen) {
			return false
		}
		d.board.SetStatus(board.ChannelSensor, "Mất tín hiệu", board.SeverityRed)
	default:
		return false
	}
	metrics.WatchdogExpiriesTotal.WithLabelValues(m.watch).Inc()
	return true
}

// issueFetch records rng as the active filter and starts the request. Only the
// most recently issued request may update the board. It reports whether the
// filter changed.
func (d *Dispatcher) issueFetch(rng models.DateRange, done chan error) bool {
	d.seq++
	seq := d.seq
	changed := d.board.Filter() != rng
	d.board.SetFilter(rng)

	ctx := d.runCtx
	go func() {
		start := time.Now()
		records, err := d.source.History(ctx, rng)
		res := historyResult{seq: seq, rng: rng, records: records, err: err, elapsed: time.Since(start), done: done}
		if perr := d.Post(res); perr != nil && done != nil {
			done <- perr
		}
	}()
	return changed
}

func (d *Dispatcher) onHistory(m historyResult) bool {
	metrics.HistoryFetchLatency.Observe(m.elapsed.Seconds())
	reply := func(err error) {
		if m.done != nil {
			d.replies = append(d.replies, func() { m.done <- err })
		}
	}

	if m.seq != d.seq {
		metrics.HistoryFetchTotal.WithLabelValues(metrics.ResultStale).Inc()
		d.log.Infow("history_fetch_stale", "seq", m.seq, "latest", d.seq, "start", m.rng.Start, "end", m.rng.End)
		reply(nil)
		return false
	}
	if m.err != nil {
		metrics.HistoryFetchTotal.WithLabelValues(metrics.ResultError).Inc()
		d.log.Errorw("history_fetch_failed", "start", m.rng.Start, "end", m.rng.End, "err", m.err)
		reply(m.err)
		return false
	}

	metrics.HistoryFetchTotal.WithLabelValues(metrics.ResultOK).Inc()
	d.accepted = true
	d.board.ApplyHistory(m.rng, m.records)
	reply(nil)

	if d.cache != nil {
		d.queueSave(models.HistoryCache{Range: m.rng, Records: m.records, FetchedAt: d.clk.Now()})
	}
	return true
}

// queueSave hands c to the saver, replacing a payload it has not picked up
// yet. Only the Run goroutine sends, so the second send never blocks.
func (d *Dispatcher) queueSave(c models.HistoryCache) {
	select {
	case d.saves <- c:
		return
	default:
	}
	select {
	case <-d.saves:
	default:
	}
	d.saves <- c
}

// saveLoop writes cache payloads one at a time, so the newest accepted
// history is always the last one stored.
func (d *Dispatcher) saveLoop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case c := <-d.saves:
			d.save(ctx, c)
		case <-ctx.Done():
			select {
			case c := <-d.saves:
				flushCtx, cancel := context.WithTimeout(context.Background(), saveFlushTimeout)
				d.save(flushCtx, c)
				cancel()
			default:
			}
			return
		}
	}
}

func (d *Dispatcher) save(ctx context.Context, c models.HistoryCache) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Save(ctx, c); err != nil {
		d.log.Errorw("history_cache_save_failed", "start", c.Range.Start, "end", c.Range.End, "err", err)
	}
}
