package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/TongAlan/val-api/internal/domain/matches"
)

var (
	matchCard       = Selector{Tag: "div", Class: "wf-card"}
	matchLink       = Selector{Tag: "a", Attr: "href"}
	matchTeamName   = Selector{Tag: "div", Class: "text-of"}
	matchScore      = Selector{Tag: "div", Class: "match-item-score"}
	matchEvent      = Selector{Tag: "div", Class: "match-item-event-series"}
	matchTime       = Selector{Tag: "div", Class: "match-item-time"}
	matchHeader     = Selector{Tag: "div", Class: "match-header"}
	matchHeaderTeam = Selector{Tag: "div", Class: "wf-title-med"}
	matchHeaderEvt  = Selector{Tag: "div", Class: "match-header-event"}
	mapsNav         = Selector{Tag: "div", Class: "vm-stats-gamesnav"}
	mapsNavItem     = Selector{Tag: "div", Class: "vm-stats-gamesnav-item"}
	mapName         = Selector{Tag: "div", Class: "map"}
	mapScore        = Selector{Tag: "div", Class: "score"}
)

// MatchList extracts one summary per match card of the listing page.
// Cards where no field at all was found are skipped.
func MatchList(doc *goquery.Document, base string) []Result[matches.Summary] {
	if doc == nil {
		return nil
	}
	var out []Result[matches.Summary]
	matchCard.All(doc.Selection).Each(func(_ int, card *goquery.Selection) {
		summary, found := matchSummary(card, base)
		if found {
			out = append(out, success(summary))
		}
	})
	if out == nil {
		out = []Result[matches.Summary]{}
	}
	return out
}

func matchSummary(card *goquery.Selection, base string) (matches.Summary, bool) {
	summary := matches.Summary{Score: matches.ScoreTBD}
	found := false

	if link := matchLink.First(card); link.Length() > 0 {
		href, _ := Attr(link, "href")
		summary.URL = absolute(base, href)
		if segs := pathSegments(href); len(segs) > 0 {
			summary.MatchID = segs[len(segs)-1]
		}
		found = true
	}
	if names := matchTeamName.All(card); names.Length() >= 2 {
		summary.Team1 = Text(names.Eq(0))
		summary.Team2 = Text(names.Eq(1))
		found = true
	}
	if score := matchScore.First(card); score.Length() > 0 {
		summary.Score = Text(score)
		found = true
	}
	if event := matchEvent.First(card); event.Length() > 0 {
		summary.Tournament = Text(event)
		found = true
	}
	if when := matchTime.First(card); when.Length() > 0 {
		summary.Time = Text(when)
		found = true
	}
	return summary, found
}

// MatchDetail extracts what it can from a match page. It returns nil only
// when doc is nil.
func MatchDetail(doc *goquery.Document) *matches.Detail {
	if doc == nil {
		return nil
	}
	detail := &matches.Detail{}
	root := doc.Selection

	if header := matchHeader.First(root); header.Length() > 0 {
		if names := matchHeaderTeam.All(header); names.Length() >= 2 {
			detail.Team1 = Text(names.Eq(0))
			detail.Team2 = Text(names.Eq(1))
		}
	}

	if nav := mapsNav.First(root); nav.Length() > 0 {
		detail.Maps = []matches.MapScore{}
		mapsNavItem.All(nav).Each(func(_ int, item *goquery.Selection) {
			name := mapName.First(item)
			score := mapScore.First(item)
			if name.Length() == 0 || score.Length() == 0 {
				return
			}
			detail.Maps = append(detail.Maps, matches.MapScore{Map: Text(name), Score: Text(score)})
		})
	}

	if event := matchHeaderEvt.First(root); event.Length() > 0 {
		detail.Tournament = Text(event)
	}
	return detail
}
