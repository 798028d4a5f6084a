package providers

import (
	"context"

	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/regions"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

// MatchProvider fetches match listings and match pages.
type MatchProvider interface {
	Matches(ctx context.Context) ([]matches.Summary, error)
	Match(ctx context.Context, id string) (*matches.Detail, error)
}

// TeamProvider fetches rankings and team pages.
type TeamProvider interface {
	Teams(ctx context.Context, region regions.Region) ([]teams.Summary, error)
	Team(ctx context.Context, id string) (*teams.Detail, error)
}

// PlayerProvider fetches regional rosters and player pages.
// Players returns details for every roster entry that could be fetched, in
// case-insensitive name order.
type PlayerProvider interface {
	Players(ctx context.Context, region regions.Region) ([]players.Detail, error)
	Player(ctx context.Context, id int) (*players.Detail, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	MatchProvider
	TeamProvider
	PlayerProvider
}
