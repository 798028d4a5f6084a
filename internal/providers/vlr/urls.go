package vlr

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/TongAlan/val-api/internal/domain/regions"
)

// DefaultBaseURL is the public vlr.gg site.
const DefaultBaseURL = "https://www.vlr.gg"

var rankingsPaths = map[regions.Region]string{
	regions.Global:   "/rankings",
	regions.Americas: "/rankings/north-america",
	regions.EMEA:     "/rankings/europe",
	regions.APAC:     "/rankings/asia-pacific",
	regions.China:    "/rankings/china",
}

// Regional stats pages for the current league stage. These event ids move
// every split and need updating when a new stage starts.
var rosterPaths = map[regions.Region]string{
	regions.Americas: "/event/stats/2501/vct-2025-americas-stage-2",
	regions.EMEA:     "/event/stats/2498/vct-2025-emea-stage-2",
	regions.APAC:     "/event/stats/2500/vct-2025-pacific-stage-2",
	regions.China:    "/event/stats/2499/vct-2025-china-stage-2",
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func (c *Client) matchesURL() string {
	return c.baseURL + "/matches"
}

func (c *Client) matchURL(id string) string {
	return c.baseURL + "/match/" + url.PathEscape(id)
}

func (c *Client) teamURL(id string) string {
	return c.baseURL + "/team/" + url.PathEscape(id)
}

func (c *Client) playerURL(id int, name string) string {
	return c.baseURL + "/player/" + strconv.Itoa(id) + "/" + url.PathEscape(strings.ToLower(name))
}

func (c *Client) rankingsURL(region regions.Region) (string, bool) {
	path, ok := rankingsPaths[region]
	if !ok {
		return "", false
	}
	return c.baseURL + path, true
}

func (c *Client) rosterURL(region regions.Region) (string, bool) {
	path, ok := rosterPaths[region]
	if !ok {
		return "", false
	}
	return c.baseURL + path, true
}
