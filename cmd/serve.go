package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "parking_kiosk/docs"
	"parking_kiosk/internal/backend"
	"parking_kiosk/internal/board"
	"parking_kiosk/internal/config"
	"parking_kiosk/internal/dispatch"
	"parking_kiosk/internal/handlers"
	"parking_kiosk/internal/logger"
	"parking_kiosk/internal/models"
	"parking_kiosk/internal/push"
	"parking_kiosk/internal/repository"
	"parking_kiosk/internal/repository/db"
	"parking_kiosk/internal/server"
	"parking_kiosk/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the kiosk: push consumer, board and HTTP server",
		Example: `  parking-kiosk serve
  parking-kiosk serve --push.transport sim --port 9090
  parking-kiosk serve --config /etc/kiosk/config.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger.Init(cfg.Log.Level, cfg.Log.Format))
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init sqlite: %w", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("sqlite_close_failed", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	client := backend.New(cfg.Backend.URL, cfg.Backend.Timeout)
	disp := dispatch.New(board.New(board.NewFormatter(cfg.Locale)), client, log.Component("dispatch"), dispatch.Options{
		WatchdogTimeout: cfg.Watchdog.Timeout,
		Cache:           repos.HistoryCache,
	})
	services := service.NewService(service.Deps{
		Repos:      repos,
		Backend:    client,
		Dispatcher: disp,
		Auth:       service.AuthConfig{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
		Log:        log,
	})
	source, err := newPushSource(cfg, log.Component("push"))
	if err != nil {
		return err
	}
	apiHandler := handlers.NewHandler(services, log.Component("http"), handlers.Options{
		BackendURL:  cfg.Backend.URL,
		AuthEnabled: cfg.Auth.Enabled,
	})
	srv := server.New(cfg.Port, apiHandler.InitRoutes())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return disp.Run(gctx) })
	g.Go(func() error { return source.Run(gctx, services) })
	g.Go(func() error {
		services.RunRetention(gctx, cfg.Journal.Retention, cfg.Journal.PruneEvery)
		return nil
	})
	g.Go(func() error {
		initialLoad(gctx, services, log)
		return nil
	})
	g.Go(func() error {
		log.Infow("http_listening", "addr", srv.Addr(), "transport", cfg.Push.Transport, "backend", cfg.Backend.URL)
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// initialLoad shows the persisted history, then fetches the default set.
func initialLoad(ctx context.Context, services *service.Service, log *logger.Logger) {
	if err := services.WarmHistory(ctx); err != nil {
		log.Errorw("history_warm_failed", "err", err)
	}
	if err := services.FetchHistory(ctx, models.DateRange{}); err != nil {
		log.Errorw("history_initial_fetch_failed", "err", err)
	}
}

func newPushSource(cfg *config.Config, log *logger.Logger) (push.Source, error) {
	switch cfg.Push.Transport {
	case config.TransportWS:
		return push.NewWSSource(cfg.Push.WS.URL, cfg.Push.ReconnectDelay, log), nil
	case config.TransportMQTT:
		return push.NewMQTTSource(push.MQTTConfig{
			BrokerURL:      cfg.Push.MQTT.Broker,
			ClientID:       cfg.Push.MQTT.ClientID,
			Username:       cfg.Push.MQTT.Username,
			Password:       cfg.Push.MQTT.Password,
			TopicRoot:      cfg.Push.MQTT.TopicRoot,
			QoS:            cfg.Push.MQTT.QoS,
			ReconnectDelay: cfg.Push.ReconnectDelay,
		}, log)
	case config.TransportSim:
		seed := cfg.Push.Sim.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return push.NewSimulator(seed).WithTick(cfg.Push.Sim.Tick), nil
	default:
		return nil, fmt.Errorf("unknown push transport %q", cfg.Push.Transport)
	}
}
