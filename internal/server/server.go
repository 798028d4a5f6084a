package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/TongAlan/val-api/internal/config"
	"github.com/TongAlan/val-api/internal/fetch"
	httpserver "github.com/TongAlan/val-api/internal/http"
	"github.com/TongAlan/val-api/internal/http/handlers"
	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/lookup"
	"github.com/TongAlan/val-api/internal/metrics"
	"github.com/TongAlan/val-api/internal/providers"
	"github.com/TongAlan/val-api/internal/providers/vlr"
)

var (
	metricsSetup = metrics.Setup
	loadTable    = lookup.Load
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	table         *lookup.Table
	provider      providers.DataProvider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires the player table, fetcher, vlr.gg client and HTTP stack. A
// missing or unreadable player table is fatal.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	table, err := loadTable(cfg.PlayerTablePath)
	if err != nil {
		return nil, err
	}
	logger.Info("player table loaded",
		slog.String("path", cfg.PlayerTablePath),
		slog.Int(logging.FieldCount, table.Len()),
	)

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	provider := buildProvider(cfg, table, logger, recorder)
	httpSrv := buildHTTPServer(cfg, provider, table, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		table:         table,
		provider:      provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildProvider(cfg config.Config, table *lookup.Table, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	fetcher := fetch.New(fetch.Options{
		Timeout:  cfg.Vlr.Timeout,
		Delay:    cfg.Vlr.RequestDelay,
		Source:   fetch.SourceVlr,
		Recorder: recorder,
		Logger:   logger,
	})
	return vlr.NewClient(fetcher, table, vlr.Options{
		BaseURL:  cfg.Vlr.BaseURL,
		Recorder: recorder,
		Logger:   logger,
	})
}

func buildHTTPServer(cfg config.Config, provider providers.DataProvider, table *lookup.Table, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	h := handlers.NewHandler(provider, table, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpserver.NewHandler(h, logger, recorder),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
