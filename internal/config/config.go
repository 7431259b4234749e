package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Push transports.
const (
	TransportWS   = "ws"
	TransportMQTT = "mqtt"
	TransportSim  = "sim"
)

// Config is the kiosk's configuration as read from configs/config.yml, the
// environment (KIOSK_ prefix) and command-line flags, in rising precedence.
type Config struct {
	Port     string         `mapstructure:"port"`
	Locale   string         `mapstructure:"locale"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Push     PushConfig     `mapstructure:"push"`
	Watchdog WatchdogConfig `mapstructure:"watchdog"`
	Journal  JournalConfig  `mapstructure:"journal"`
	History  HistoryConfig  `mapstructure:"history"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PushConfig struct {
	Transport      string        `mapstructure:"transport"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay"`
	WS             WSConfig      `mapstructure:"ws"`
	MQTT           MQTTConfig    `mapstructure:"mqtt"`
	Sim            SimConfig     `mapstructure:"sim"`
}

type WSConfig struct {
	URL string `mapstructure:"url"`
}

type MQTTConfig struct {
	Broker    string `mapstructure:"broker"`
	ClientID  string `mapstructure:"client_id"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	TopicRoot string `mapstructure:"topic_root"`
	QoS       byte   `mapstructure:"qos"`
}

type SimConfig struct {
	Tick time.Duration `mapstructure:"tick"`
	Seed int64         `mapstructure:"seed"`
}

type WatchdogConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type JournalConfig struct {
	Retention  time.Duration `mapstructure:"retention"`
	PruneEvery time.Duration `mapstructure:"prune_every"`
}

// HistoryConfig bounds the rows the history command prints.
type HistoryConfig struct {
	Limit int `mapstructure:"limit"`
}

type AuthConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("locale", "vi-VN")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "kiosk.db")
	v.SetDefault("backend.url", "http://127.0.0.1:5000")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("push.transport", TransportWS)
	v.SetDefault("push.reconnect_delay", 3*time.Second)
	v.SetDefault("push.mqtt.topic_root", "parking")
	v.SetDefault("push.mqtt.qos", 1)
	v.SetDefault("push.sim.tick", time.Second)
	v.SetDefault("watchdog.timeout", 5*time.Second)
	v.SetDefault("journal.retention", 7*24*time.Hour)
	v.SetDefault("journal.prune_every", time.Hour)
	v.SetDefault("history.limit", 50)
	v.SetDefault("auth.token_ttl", time.Hour)
}

// AddFlags registers the flags that override the file.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to the config file (default configs/config.yml).")
	fs.String("port", "", "HTTP port of the kiosk.")
	fs.String("log.level", "", "Log level: debug, info, warn or error.")
	fs.String("log.format", "", "Log encoding: console or json.")
	fs.String("backend.url", "", "Root URL of the parking backend.")
	fs.String("push.transport", "", "Push transport: ws, mqtt or sim.")
	fs.String("db.path", "", "SQLite file for the journal, history cache and operators.")
}

// Load reads the config file named by --config (or configs/config.yml),
// overlays KIOSK_* environment variables and any flags that were set.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if fs != nil {
		if err := bindChangedFlags(v, fs); err != nil {
			return nil, err
		}
	}

	path := v.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("KIOSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindChangedFlags binds only flags the user set, so an empty flag default
// never shadows the file.
func bindChangedFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || !f.Changed {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})
	return err
}

// Validate rejects settings the kiosk cannot start with.
func (c *Config) Validate() error {
	switch c.Push.Transport {
	case TransportWS:
		if c.Push.WS.URL == "" {
			return errors.New("push.ws.url is required for the ws transport")
		}
	case TransportMQTT:
		if c.Push.MQTT.Broker == "" {
			return errors.New("push.mqtt.broker is required for the mqtt transport")
		}
	case TransportSim:
	default:
		return fmt.Errorf("unknown push.transport %q", c.Push.Transport)
	}
	if c.Auth.Enabled && c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key is required when auth is enabled")
	}
	return nil
}
