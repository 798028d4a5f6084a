package testutil

import (
	"context"
	"sync/atomic"

	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/regions"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

// StubProvider returns canned records. Err, when set, is returned by every
// call. Panic makes every call panic.
type StubProvider struct {
	MatchList    []matches.Summary
	MatchDetail  *matches.Detail
	TeamList     []teams.Summary
	TeamDetail   *teams.Detail
	PlayerList   []players.Detail
	PlayerDetail *players.Detail
	Err          error
	Panic        bool

	Calls      atomic.Int32
	LastRegion regions.Region
}

// NewStubProvider returns a StubProvider populated with one record of each kind.
func NewStubProvider() *StubProvider {
	player := SamplePlayer(9, "TenZ")
	return &StubProvider{
		MatchList:    []matches.Summary{SampleMatch("429390")},
		MatchDetail:  &matches.Detail{Team1: "Sentinels", Team2: "FNATIC", Maps: []matches.MapScore{{Map: "Ascent", Score: "13-11"}}},
		TeamList:     []teams.Summary{SampleTeam("2", "Sentinels")},
		TeamDetail:   &teams.Detail{Name: "Sentinels", Tag: "SEN"},
		PlayerList:   []players.Detail{player},
		PlayerDetail: &player,
	}
}

func (s *StubProvider) call() error {
	s.Calls.Add(1)
	if s.Panic {
		panic("stub provider panic")
	}
	return s.Err
}

func (s *StubProvider) Matches(ctx context.Context) ([]matches.Summary, error) {
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.MatchList, nil
}

func (s *StubProvider) Match(ctx context.Context, id string) (*matches.Detail, error) {
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.MatchDetail, nil
}

func (s *StubProvider) Teams(ctx context.Context, region regions.Region) ([]teams.Summary, error) {
	s.LastRegion = region
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.TeamList, nil
}

func (s *StubProvider) Team(ctx context.Context, id string) (*teams.Detail, error) {
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.TeamDetail, nil
}

func (s *StubProvider) Players(ctx context.Context, region regions.Region) ([]players.Detail, error) {
	s.LastRegion = region
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.PlayerList, nil
}

func (s *StubProvider) Player(ctx context.Context, id int) (*players.Detail, error) {
	if err := s.call(); err != nil {
		return nil, err
	}
	return s.PlayerDetail, nil
}

// StubTable reports a fixed number of lookup rows.
type StubTable int

func (t StubTable) Len() int { return int(t) }
