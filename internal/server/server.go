package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"match-tracker-service/internal/config"
	httpserver "match-tracker-service/internal/http"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/metrics"
	"match-tracker-service/internal/providers"
	"match-tracker-service/internal/publisher"
	"match-tracker-service/internal/scheduler"
	"match-tracker-service/internal/store"
	"match-tracker-service/internal/timeutil"
	"match-tracker-service/internal/tracker"
)

var metricsSetup = metrics.Setup

// Server owns the tracking engine, its scheduler, and the HTTP surfaces.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.TrackedStore
	storeClose    func() error
	tracker       *tracker.Tracker
	scheduler     *scheduler.Scheduler
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires the full service from configuration: provider, store, publisher,
// tracking engine, scheduler, and HTTP servers.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithDeps(cfg, logger, nil, nil)
}

// newServerWithDeps lets tests inject a provider and publisher.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, provider providers.FixtureProvider, pub publisher.Publisher) (*Server, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn(logger, "unknown timezone, falling back to UTC", "timezone", cfg.Timezone, "error", err)
		loc = time.UTC
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg, loc)
	}
	if pub == nil {
		pub = buildPublisher(cfg.Publisher, logger)
	}

	trackedStore, storeClose, err := buildStore(context.Background(), cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}

	engine := tracker.New(provider, trackedStore, pub, tracker.Config{
		Leagues: cfg.Leagues,
		Window:  timeutil.NewWindow(cfg.WindowAnchorHour, loc),
		Thresholds: tracker.Thresholds{
			Grace:       cfg.GracePeriod,
			ResultDelay: cfg.ResultDelay,
		},
	}, logger, recorder)

	sched := scheduler.New(engine, logger, recorder, loc, cfg.WindowAnchorHour, cfg.ResolveInterval, cfg.HeartbeatInterval)

	httpSrv := buildHTTPServer(cfg, sched, trackedStore, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         trackedStore,
		storeClose:    storeClose,
		tracker:       engine,
		scheduler:     sched,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildHTTPServer(cfg config.Config, sched *scheduler.Scheduler, trackedStore store.TrackedStore, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(sched, trackedStore, logger)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the scheduler and HTTP servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.scheduler.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.scheduler.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop scheduler", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil {
			logging.Warn(s.logger, "store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
