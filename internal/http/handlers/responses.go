package handlers

import (
	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

// Response bodies. Field names are part of the public API.

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ReadyResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

type MatchesResponse struct {
	Success bool              `json:"success"`
	Count   int               `json:"count"`
	Matches []matches.Summary `json:"matches"`
}

type MatchResponse struct {
	Success bool            `json:"success"`
	Match   *matches.Detail `json:"match"`
}

type PlayersResponse struct {
	Success bool             `json:"success"`
	Region  string           `json:"region"`
	Count   int              `json:"count"`
	Players []players.Detail `json:"players"`
}

type PlayerResponse struct {
	Success bool            `json:"success"`
	Player  *players.Detail `json:"player"`
}

type TeamsResponse struct {
	Success bool            `json:"success"`
	Region  string          `json:"region"`
	Count   int             `json:"count"`
	Teams   []teams.Summary `json:"teams"`
}

type TeamResponse struct {
	Success bool          `json:"success"`
	Team    *teams.Detail `json:"team"`
}

// ErrorResponse is written for every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}
