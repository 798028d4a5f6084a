package teams

// Summary is one row of a rankings page.
type Summary struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	TeamID  string `json:"team_id"`
	Country string `json:"country,omitempty"`
	Rank    string `json:"rank,omitempty"`
}

// MatchRef points at a match listed on a team page.
type MatchRef struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// PlayerRef points at a roster member listed on a team page.
type PlayerRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Detail is the best-effort team page view.
type Detail struct {
	Name          string      `json:"name,omitempty"`
	Tag           string      `json:"tag,omitempty"`
	Players       []PlayerRef `json:"players,omitempty"`
	RecentMatches []MatchRef  `json:"recent_matches,omitempty"`
}

// IsEmpty reports whether nothing at all was recovered from the page.
func (d Detail) IsEmpty() bool {
	return d.Name == "" && d.Tag == "" && d.Players == nil && d.RecentMatches == nil
}
