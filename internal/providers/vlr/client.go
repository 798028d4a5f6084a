package vlr

import (
	"context"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/regions"
	"github.com/TongAlan/val-api/internal/domain/teams"
	"github.com/TongAlan/val-api/internal/extract"
	"github.com/TongAlan/val-api/internal/logging"
	"github.com/TongAlan/val-api/internal/metrics"
	"github.com/TongAlan/val-api/internal/providers"
)

// ProviderName identifies this provider in logs.
const ProviderName = "vlr"

type pageFetcher interface {
	Fetch(ctx context.Context, url string) *goquery.Document
}

type nameLookup interface {
	LookupName(id int) (string, bool)
}

// Options configure a Client.
type Options struct {
	BaseURL  string
	Recorder *metrics.Recorder
	Logger   *slog.Logger
}

// Client serves records scraped from vlr.gg pages.
type Client struct {
	fetcher  pageFetcher
	names    nameLookup
	baseURL  string
	recorder *metrics.Recorder
	logger   *slog.Logger
}

var _ providers.DataProvider = (*Client)(nil)

func NewClient(fetcher pageFetcher, names nameLookup, opts Options) *Client {
	return &Client{
		fetcher:  fetcher,
		names:    names,
		baseURL:  normalizeBaseURL(opts.BaseURL),
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
}

// Matches returns the current match listing. An unreachable listing yields
// an empty result rather than an error.
func (c *Client) Matches(ctx context.Context) ([]matches.Summary, error) {
	doc := c.fetcher.Fetch(ctx, c.matchesURL())
	if doc == nil {
		return []matches.Summary{}, nil
	}
	return extract.Collect(extract.KindMatch, extract.MatchList(doc, c.baseURL), c.log(ctx), c.recorder), nil
}

// Match returns one match page. It fails with ErrNotFound when the page is
// unreachable or nothing could be read from it.
func (c *Client) Match(ctx context.Context, id string) (*matches.Detail, error) {
	detail := extract.MatchDetail(c.fetcher.Fetch(ctx, c.matchURL(id)))
	if detail == nil || detail.IsEmpty() {
		return nil, providers.NotFound("match %s", id)
	}
	return detail, nil
}

// Teams returns the rankings for region.
func (c *Client) Teams(ctx context.Context, region regions.Region) ([]teams.Summary, error) {
	url, ok := c.rankingsURL(region)
	if !ok {
		return nil, providers.InvalidRegion(string(region), regions.TeamRegions)
	}
	doc := c.fetcher.Fetch(ctx, url)
	if doc == nil {
		return nil, providers.NotFound("rankings for %s", region)
	}
	return extract.Collect(extract.KindTeam, extract.TeamList(doc, c.baseURL), c.log(ctx), c.recorder), nil
}

// Team returns one team page.
func (c *Client) Team(ctx context.Context, id string) (*teams.Detail, error) {
	detail := extract.TeamDetail(c.fetcher.Fetch(ctx, c.teamURL(id)), c.baseURL)
	if detail == nil || detail.IsEmpty() {
		return nil, providers.NotFound("team %s", id)
	}
	return detail, nil
}

// Players fetches the roster for region and then each listed player page,
// one at a time. Players whose page cannot be fetched are left out.
// A cancelled ctx stops the walk and is reported as an error.
func (c *Client) Players(ctx context.Context, region regions.Region) ([]players.Detail, error) {
	url, ok := c.rosterURL(region)
	if !ok {
		return nil, providers.InvalidRegion(string(region), regions.PlayerRegions)
	}
	logger := c.log(ctx)
	doc := c.fetcher.Fetch(ctx, url)
	if doc == nil {
		return nil, providers.NotFound("roster for %s", region)
	}
	roster := extract.Collect(extract.KindRoster, extract.RegionRoster(doc), logger, c.recorder)

	out := make([]players.Detail, 0, len(roster))
	for _, entry := range roster {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name, ok := c.lookupName(entry.VlrID)
		if !ok || name == "" {
			name = entry.IGN
		}
		if name == "" {
			logging.Warn(logger, "skipping roster entry without name", logging.FieldPlayerID, entry.VlrID, logging.FieldRegion, region)
			continue
		}
		playerURL := c.playerURL(entry.VlrID, name)
		page := c.fetcher.Fetch(ctx, playerURL)
		if page == nil {
			logging.Warn(logger, "skipping unreachable player", logging.FieldPlayerID, entry.VlrID, logging.FieldRegion, region)
			continue
		}
		out = append(out, extract.PlayerDetail(page, entry.VlrID, playerURL))
	}
	logging.Info(logger, "roster fetched",
		logging.FieldSource, ProviderName,
		logging.FieldRegion, region,
		logging.FieldCount, len(out),
	)
	return out, nil
}

// Player returns one player page. Only players present in the lookup table
// can be resolved.
func (c *Client) Player(ctx context.Context, id int) (*players.Detail, error) {
	name, ok := c.lookupName(id)
	if !ok {
		return nil, providers.NotFound("player %d", id)
	}
	playerURL := c.playerURL(id, name)
	doc := c.fetcher.Fetch(ctx, playerURL)
	if doc == nil {
		return nil, providers.NotFound("player %d", id)
	}
	detail := extract.PlayerDetail(doc, id, playerURL)
	return &detail, nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, c.logger)
}

func (c *Client) lookupName(id int) (string, bool) {
	if c.names == nil {
		return "", false
	}
	return c.names.LookupName(id)
}
