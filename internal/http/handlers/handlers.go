package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/TongAlan/val-api/internal/domain/regions"
	"github.com/TongAlan/val-api/internal/http/requestutil"
	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/providers"
)

const (
	rootMessage   = "VLR API - Valorant data from vlr.gg"
	healthMessage = "VLR API is running"
)

// PlayerTable reports how many players can be resolved by id.
type PlayerTable interface {
	Len() int
}

// Handler wires HTTP routes to the data provider.
type Handler struct {
	data   providers.DataProvider
	table  PlayerTable
	logger *slog.Logger
}

// NewHandler constructs a Handler. A nil table makes /ready report unavailable.
func NewHandler(data providers.DataProvider, table PlayerTable, logger *slog.Logger) *Handler {
	return &Handler{
		data:   data,
		table:  table,
		logger: logger,
	}
}

// Root describes the service.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: rootMessage}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Message: healthMessage}, h.logger)
}

// Ready reports readiness for traffic once the player lookup table is loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.table == nil {
		writeError(w, r, http.StatusServiceUnavailable, "player lookup table not loaded", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ReadyResponse{Status: "ready", Players: h.table.Len()}, h.logger)
}

// Matches lists current matches.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	list, err := h.data.Matches(r.Context())
	if err != nil {
		h.providerError(w, r, err, "", "Error fetching matches")
		return
	}
	writeJSON(w, http.StatusOK, MatchesResponse{Success: true, Count: len(list), Matches: list}, h.logger)
}

// Match returns one match by id.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	id, err := requestutil.PathString(r, "match_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid match id", h.logger)
		return
	}
	detail, err := h.data.Match(r.Context(), id)
	if err != nil {
		h.providerError(w, r, err, "Match not found", "Error fetching match details")
		return
	}
	writeJSON(w, http.StatusOK, MatchResponse{Success: true, Match: detail}, h.logger)
}

// Players returns the player details for a region's league roster.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	raw := r.PathValue("region")
	region, ok := regions.Parse(raw, regions.PlayerRegions)
	if !ok {
		h.invalidRegion(w, r, regions.PlayerRegions)
		return
	}
	list, err := h.data.Players(r.Context(), region)
	if err != nil {
		h.providerError(w, r, err, "No players found for region: "+raw, "Error fetching players")
		return
	}
	writeJSON(w, http.StatusOK, PlayersResponse{Success: true, Region: raw, Count: len(list), Players: list}, h.logger)
}

// Player returns one player by numeric id.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	id, err := requestutil.PathInt(r, "vlr_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	detail, err := h.data.Player(r.Context(), id)
	if err != nil {
		h.providerError(w, r, err, fmt.Sprintf("Player with ID %d not found", id), "Error fetching player details")
		return
	}
	writeJSON(w, http.StatusOK, PlayerResponse{Success: true, Player: detail}, h.logger)
}

// Teams returns the rankings for a region.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	raw := r.PathValue("region")
	region, ok := regions.Parse(raw, regions.TeamRegions)
	if !ok {
		h.invalidRegion(w, r, regions.TeamRegions)
		return
	}
	list, err := h.data.Teams(r.Context(), region)
	if err != nil {
		h.providerError(w, r, err, "No teams found for region: "+raw, "Error fetching teams")
		return
	}
	writeJSON(w, http.StatusOK, TeamsResponse{Success: true, Region: raw, Count: len(list), Teams: list}, h.logger)
}

// Team returns one team by id.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	if !h.allowGet(w, r) {
		return
	}
	id, err := requestutil.PathString(r, "team_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	detail, err := h.data.Team(r.Context(), id)
	if err != nil {
		h.providerError(w, r, err, "Team not found", "Error fetching team details")
		return
	}
	writeJSON(w, http.StatusOK, TeamResponse{Success: true, Team: detail}, h.logger)
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	return false
}

func (h *Handler) invalidRegion(w http.ResponseWriter, r *http.Request, allowed []regions.Region) {
	writeError(w, r, http.StatusBadRequest, "Invalid region. Must be one of: "+regions.Join(allowed), h.logger)
}

// providerError maps provider failures onto status codes. Unexpected errors
// are logged and answered with internalMsg only.
func (h *Handler) providerError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, internalMsg string) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case errors.Is(err, providers.ErrNotFound) && notFoundMsg != "":
		logging.Info(logger, "upstream record not found", "error", err)
		writeError(w, r, http.StatusNotFound, notFoundMsg, h.logger)
	case errors.Is(err, providers.ErrInvalidRegion):
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Warn(logger, "request abandoned", "error", err)
		writeError(w, r, http.StatusServiceUnavailable, "request canceled", h.logger)
	default:
		logging.Error(logger, internalMsg, err)
		writeError(w, r, http.StatusInternalServerError, internalMsg, h.logger)
	}
}
