package matches

// ScoreTBD is reported when a match card carries no score yet.
const ScoreTBD = "TBD"

// Summary is one card from the upcoming/recent matches listing.
type Summary struct {
	MatchID    string `json:"match_id,omitempty"`
	URL        string `json:"url,omitempty"`
	Team1      string `json:"team1,omitempty"`
	Team2      string `json:"team2,omitempty"`
	Score      string `json:"score"`
	Tournament string `json:"tournament,omitempty"`
	Time       string `json:"time,omitempty"`
}

// MapScore pairs a played map with its score line.
type MapScore struct {
	Map   string `json:"map"`
	Score string `json:"score"`
}

// Detail is the match page view. Maps is nil when the page had no maps
// navigation at all and empty when the navigation held no complete entries.
type Detail struct {
	Team1      string     `json:"team1,omitempty"`
	Team2      string     `json:"team2,omitempty"`
	Maps       []MapScore `json:"maps,omitempty"`
	Tournament string     `json:"tournament,omitempty"`
}

// IsEmpty reports whether nothing at all was recovered from the page.
func (d Detail) IsEmpty() bool {
	return d.Team1 == "" && d.Team2 == "" && d.Maps == nil && d.Tournament == ""
}
