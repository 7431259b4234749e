package push

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"parking_kiosk/internal/logger"
)

const (
	defaultKeepAlive      = 30
	defaultConnectTimeout = 10 * time.Second
)

// MQTTConfig configures the broker transport.
type MQTTConfig struct {
	BrokerURL      string
	ClientID       string
	Username       string
	Password       string
	TopicRoot      string // events arrive on <root>/new_log and <root>/sensor_update
	QoS            byte
	ReconnectDelay time.Duration
}

// MQTTSource subscribes to the backend's event topics on an MQTT broker.
type MQTTSource struct {
	cfg       MQTTConfig
	log       *logger.Logger
	connected atomic.Bool
}

func NewMQTTSource(cfg MQTTConfig, log *logger.Logger) (*MQTTSource, error) {
	if cfg.BrokerURL == "" {
		return nil, fmt.Errorf("mqtt broker url is required")
	}
	if _, err := url.Parse(cfg.BrokerURL); err != nil {
		return nil, fmt.Errorf("invalid mqtt broker url: %w", err)
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "parking-kiosk"
	}
	cfg.TopicRoot = strings.TrimRight(cfg.TopicRoot, "/")
	if cfg.TopicRoot == "" {
		cfg.TopicRoot = "parking"
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	return &MQTTSource{cfg: cfg, log: log}, nil
}

// Topics returns the subscribed topic for each event.
func (s *MQTTSource) Topics() map[string]string {
	return map[string]string{
		s.cfg.TopicRoot + "/" + EventNewLog:       EventNewLog,
		s.cfg.TopicRoot + "/" + EventSensorUpdate: EventSensorUpdate,
	}
}

// Run connects and keeps the session alive until ctx is cancelled.
func (s *MQTTSource) Run(ctx context.Context, sink Sink) error {
	brokerURL, _ := url.Parse(s.cfg.BrokerURL)
	topics := s.Topics()

	subs := make([]paho.SubscribeOptions, 0, len(topics))
	for topic := range topics {
		subs = append(subs, paho.SubscribeOptions{Topic: topic, QoS: s.cfg.QoS})
	}

	cfg := autopaho.ClientConfig{
		ServerUrls:                    []*url.URL{brokerURL},
		KeepAlive:                     defaultKeepAlive,
		CleanStartOnInitialConnection: true,
		ReconnectBackoff:              autopaho.NewConstantBackoff(s.cfg.ReconnectDelay),
		ConnectTimeout:                defaultConnectTimeout,
		ConnectUsername:               s.cfg.Username,
		ConnectPassword:               []byte(s.cfg.Password),
		OnConnectionUp: func(cm *autopaho.ConnectionManager, _ *paho.Connack) {
			s.log.Infow("push_connected", "transport", "mqtt", "broker", s.cfg.BrokerURL)
			if _, err := cm.Subscribe(ctx, &paho.Subscribe{Subscriptions: subs}); err != nil {
				s.log.Errorw("push_subscribe_failed", "transport", "mqtt", "err", err)
			}
			s.setConnected(ctx, sink, true)
		},
		OnConnectError: func(err error) {
			s.log.Errorw("push_connect_failed", "transport", "mqtt", "broker", s.cfg.BrokerURL, "err", err)
			s.setConnected(ctx, sink, false)
		},
		ClientConfig: paho.ClientConfig{
			ClientID: s.cfg.ClientID,
			OnPublishReceived: []func(paho.PublishReceived) (bool, error){
				func(p paho.PublishReceived) (bool, error) {
					s.route(ctx, sink, topics, p.Packet.Topic, p.Packet.Payload)
					return true, nil
				},
			},
			OnClientError: func(err error) {
				s.log.Errorw("push_client_error", "transport", "mqtt", "err", err)
				s.setConnected(ctx, sink, false)
			},
			OnServerDisconnect: func(d *paho.Disconnect) {
				reason := ""
				if d.Properties != nil {
					reason = d.Properties.ReasonString
				}
				s.log.Infow("push_server_disconnect", "transport", "mqtt", "reason", reason)
				s.setConnected(ctx, sink, false)
			},
		},
	}

	cm, err := autopaho.NewConnection(ctx, cfg)
	if err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = cm.Disconnect(shutdownCtx)
	return nil
}

// setConnected delivers connect/disconnect only on an actual change.
func (s *MQTTSource) setConnected(ctx context.Context, sink Sink, up bool) {
	if s.connected.Swap(up) == up {
		return
	}
	if up {
		sink.Deliver(ctx, Event{Name: EventConnect})
	} else {
		sink.Deliver(ctx, Event{Name: EventDisconnect})
	}
}

func (s *MQTTSource) route(ctx context.Context, sink Sink, topics map[string]string, topic string, payload []byte) {
	name, ok := topics[topic]
	if !ok {
		s.log.Debugw("push_unknown_topic", "transport", "mqtt", "topic", topic)
		return
	}
	sink.Deliver(ctx, Event{Name: name, Payload: append([]byte(nil), payload...)})
}
