package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

// maxRecentMatches bounds the recent match references kept from a team page.
const maxRecentMatches = 5

var (
	tableRow       = Selector{Tag: "tr"}
	teamLink       = Selector{Tag: "a", Attr: "href", Contains: "/team/"}
	teamFlag       = Selector{Tag: "img", Class: "flag"}
	teamRank       = Selector{Tag: "td", Class: "rank-item-rank-num"}
	teamTitle      = Selector{Tag: "h1", Class: "wf-title"}
	teamTag        = Selector{Tag: "h2", Class: "team-header-tag"}
	teamRoster     = Selector{Tag: "div", Class: "team-roster"}
	teamRosterItem = Selector{Tag: "div", Class: "team-roster-item"}
	playerLink     = Selector{Tag: "a", Attr: "href", Contains: "/player/"}
	recentCard     = Selector{Tag: "div", Class: "wf-card"}
	recentMatch    = Selector{Tag: "a", Attr: "href", Contains: "/match/"}
)

// TeamList extracts one summary per rankings row that links to a team.
// Rows without a team link are not items and are skipped silently.
func TeamList(doc *goquery.Document, base string) []Result[teams.Summary] {
	if doc == nil {
		return nil
	}
	out := []Result[teams.Summary]{}
	tableRow.All(doc.Selection).Each(func(i int, row *goquery.Selection) {
		link := teamLink.First(row)
		if link.Length() == 0 {
			return
		}
		href, _ := Attr(link, "href")
		segs := pathSegments(href)
		if len(segs) < 3 || segs[len(segs)-3] != "team" {
			out = append(out, failure[teams.Summary](KindTeam, i, fmt.Sprintf("unexpected team link %q", href)))
			return
		}

		summary := teams.Summary{
			Name:   Text(link),
			URL:    absolute(base, href),
			TeamID: segs[len(segs)-2],
		}
		if flag := teamFlag.First(row); flag.Length() > 0 {
			if alt, ok := Attr(flag, "alt"); ok {
				summary.Country = alt
			} else {
				summary.Country = players.Unknown
			}
		}
		if rank := teamRank.First(row); rank.Length() > 0 {
			summary.Rank = Text(rank)
		}
		out = append(out, success(summary))
	})
	return out
}

// TeamDetail extracts what it can from a team page. It returns nil only
// when doc is nil.
func TeamDetail(doc *goquery.Document, base string) *teams.Detail {
	if doc == nil {
		return nil
	}
	root := doc.Selection
	detail := &teams.Detail{
		Name: Text(teamTitle.First(root)),
		Tag:  Text(teamTag.First(root)),
	}

	if roster := teamRoster.First(root); roster.Length() > 0 {
		detail.Players = []teams.PlayerRef{}
		teamRosterItem.All(roster).Each(func(_ int, item *goquery.Selection) {
			link := playerLink.First(item)
			if link.Length() == 0 {
				return
			}
			href, _ := Attr(link, "href")
			detail.Players = append(detail.Players, teams.PlayerRef{Name: Text(link), URL: absolute(base, href)})
		})
	}

	if card := recentCard.First(root); card.Length() > 0 {
		detail.RecentMatches = []teams.MatchRef{}
		recentMatch.All(card).EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, _ := Attr(link, "href")
			detail.RecentMatches = append(detail.RecentMatches, teams.MatchRef{URL: absolute(base, href), Text: Text(link)})
			return len(detail.RecentMatches) < maxRecentMatches
		})
	}
	return detail
}
