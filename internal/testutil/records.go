package testutil

import (
	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

// SampleMatch returns a complete match summary with the provided id.
func SampleMatch(id string) matches.Summary {
	return matches.Summary{
		MatchID:    id,
		URL:        "https://www.vlr.gg/" + id,
		Team1:      "Sentinels",
		Team2:      "FNATIC",
		Score:      "2 : 1",
		Tournament: "Upper Final",
		Time:       "4:00 PM",
	}
}

// SampleTeam returns a ranked team summary.
func SampleTeam(id, name string) teams.Summary {
	return teams.Summary{
		Name:    name,
		URL:     "https://www.vlr.gg/team/" + id,
		TeamID:  id,
		Country: "United States",
		Rank:    "1",
	}
}

// SamplePlayer returns a player detail with every field filled in.
func SamplePlayer(id int, ign string) players.Detail {
	d := players.NewDetail(id, "https://www.vlr.gg/player/x")
	d.IGN = ign
	d.Team = "Sentinels"
	d.TopAgents = []string{"jett"}
	return d
}
