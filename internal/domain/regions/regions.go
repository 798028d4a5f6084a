package regions

import "strings"

// Region is one of the competitive regions the API accepts.
type Region string

const (
	Americas Region = "americas"
	EMEA     Region = "emea"
	APAC     Region = "apac"
	China    Region = "china"
	Global   Region = "global"
)

// PlayerRegions are accepted by the roster endpoints.
var PlayerRegions = []Region{Americas, EMEA, APAC, China}

// TeamRegions are accepted by the rankings endpoints.
var TeamRegions = []Region{Americas, EMEA, APAC, China, Global}

// Parse matches raw case-insensitively against allowed.
func Parse(raw string, allowed []Region) (Region, bool) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range allowed {
		if string(r) == want {
			return r, true
		}
	}
	return "", false
}

// Join renders allowed as a comma separated list for error messages.
func Join(allowed []Region) string {
	names := make([]string, 0, len(allowed))
	for _, r := range allowed {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
