package players

// Fallback values reported when a section is missing from a player page.
const (
	UnknownPlayer = "Unknown Player"
	Unknown       = "Unknown"
)

// MaxTopAgents bounds the most-played agents list.
const MaxTopAgents = 3

// Detail is the player page view. Every string field carries a fallback
// sentinel instead of being left empty.
type Detail struct {
	VlrID         int      `json:"vlr_id"`
	IGN           string   `json:"ign"`
	RealName      string   `json:"real_name"`
	URL           string   `json:"url"`
	Country       string   `json:"country"`
	Team          string   `json:"team"`
	TotalWinnings string   `json:"total_winnings"`
	TopAgents     []string `json:"top_agents"`
}

// NewDetail returns a Detail with every fallback applied.
func NewDetail(vlrID int, url string) Detail {
	return Detail{
		VlrID:         vlrID,
		IGN:           UnknownPlayer,
		RealName:      Unknown,
		URL:           url,
		Country:       Unknown,
		Team:          Unknown,
		TotalWinnings: Unknown,
		TopAgents:     []string{},
	}
}

// RosterEntry is one player listed on a regional stats page. It only drives
// follow-up detail fetches and is never returned to API callers.
type RosterEntry struct {
	VlrID int    `json:"vlr_id"`
	IGN   string `json:"ign"`
}
