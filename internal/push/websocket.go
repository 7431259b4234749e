package push

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"parking_kiosk/internal/logger"
)

const (
	defaultReconnectDelay = 3 * time.Second
	handshakeTimeout      = 10 * time.Second
	pongWait              = 60 * time.Second
)

// WSSource reads {"type","data"} envelopes from a websocket endpoint of the
// backend and reconnects after a fixed delay whenever the socket drops.
type WSSource struct {
	url            string
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	header         http.Header
	log            *logger.Logger
}

func NewWSSource(url string, reconnectDelay time.Duration, log *logger.Logger) *WSSource {
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}
	return &WSSource{
		url:            url,
		reconnectDelay: reconnectDelay,
		dialer:         &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		log:            log,
	}
}

// Run dials, pumps events and redials until ctx is cancelled.
func (s *WSSource) Run(ctx context.Context, sink Sink) error {
	for {
		conn, _, err := s.dialer.DialContext(ctx, s.url, s.header)
		if err != nil {
			s.log.Errorw("push_connect_failed", "transport", "ws", "url", s.url, "err", err)
		} else {
			s.log.Infow("push_connected", "transport", "ws", "url", s.url)
			sink.Deliver(ctx, Event{Name: EventConnect})
			s.pump(ctx, conn, sink)
			sink.Deliver(ctx, Event{Name: EventDisconnect})
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.reconnectDelay):
		}
	}
}

// pump reads until the connection fails or ctx is cancelled.
func (s *WSSource) pump(ctx context.Context, conn *websocket.Conn, sink Sink) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(time.Second))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				s.log.Errorw("push_read_failed", "transport", "ws", "err", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			s.log.Errorw("push_bad_envelope", "transport", "ws", "err", err)
			continue
		}
		// connection state comes from the socket itself, not from the peer
		if ev.Name == EventConnect || ev.Name == EventDisconnect {
			continue
		}
		if !Known(ev.Name) {
			s.log.Debugw("push_unknown_event", "transport", "ws", "type", ev.Name)
			continue
		}
		sink.Deliver(ctx, ev)
	}
}
