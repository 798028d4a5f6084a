package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/TongAlan/val-api/internal/http/handlers"
	"github.com/TongAlan/val-api/internal/http/middleware"
	"github.com/TongAlan/val-api/internal/metrics"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/{$}", handler.Root)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/matches/{match_id}", handler.Match)
	mux.HandleFunc("/players/{region}", handler.Players)
	mux.HandleFunc("/player/{vlr_id}", handler.Player)
	mux.HandleFunc("/teams/{region}", handler.Teams)
	mux.HandleFunc("/team/{team_id}", handler.Team)
	mux.HandleFunc("/", handler.NotFound)
	return mux
}

// NewHandler wraps the router with panic recovery, request logging and metrics.
func NewHandler(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	return middleware.LoggingMiddleware(logger, recorder, middleware.Recover(logger, NewRouter(handler)))
}
