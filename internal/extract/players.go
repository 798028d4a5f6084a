package extract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/TongAlan/val-api/internal/domain/players"
)

var (
	// rosterPlayerCell marks the player column of a regional stats row.
	rosterPlayerCell = Selector{Tag: "td", Class: "mod-player"}
	rosterName       = Selector{Tag: "div", Class: "text-of"}

	playerIGN      = Selector{Tag: "h1", Class: "wf-title"}
	playerRealName = Selector{Tag: "h2", Class: "player-real-name"}
	playerHeader   = Selector{Tag: "div", Class: "player-header"}
	playerCountry  = Selector{Tag: "div", Class: "ge-text-light"}
	playerTeamItem = Selector{Tag: "a", Class: "wf-module-item"}
	playerTeamName = Selector{Tag: "div", Attr: "style", Contains: "font-weight: 500"}
	agentTable     = Selector{Tag: "table", Class: "wf-table"}
	tableCell      = Selector{Tag: "td"}
	agentImage     = Selector{Tag: "img", Attr: "alt"}
)

const (
	winningsPrefix  = "$"
	winningsGrouped = ","
)

// RegionRoster extracts the players listed on a regional stats page, sorted
// by case-insensitive name. Duplicates are kept.
func RegionRoster(doc *goquery.Document) []Result[players.RosterEntry] {
	if doc == nil {
		return nil
	}
	out := []Result[players.RosterEntry]{}
	tableRow.All(doc.Selection).Each(func(i int, row *goquery.Selection) {
		cell := rosterPlayerCell.First(row)
		if cell.Length() == 0 {
			return
		}
		link := playerLink.First(cell)
		if link.Length() == 0 {
			out = append(out, failure[players.RosterEntry](KindRoster, i, "player cell without player link"))
			return
		}
		href, _ := Attr(link, "href")
		id, err := playerID(href)
		if err != nil {
			out = append(out, failure[players.RosterEntry](KindRoster, i, err.Error()))
			return
		}
		name := Text(rosterName.First(cell))
		if name == "" {
			name = Text(link)
		}
		out = append(out, success(players.RosterEntry{VlrID: id, IGN: name}))
	})

	sort.SliceStable(out, func(a, b int) bool {
		return strings.ToLower(out[a].Record.IGN) < strings.ToLower(out[b].Record.IGN)
	})
	return out
}

func playerID(href string) (int, error) {
	segs := pathSegments(href)
	for i := 0; i+1 < len(segs); i++ {
		if segs[i] != "player" {
			continue
		}
		id, err := strconv.Atoi(segs[i+1])
		if err != nil {
			return 0, fmt.Errorf("player link %q has non-numeric id", href)
		}
		return id, nil
	}
	return 0, fmt.Errorf("unexpected player link %q", href)
}

// PlayerDetail extracts a player page. Missing sections fall back to the
// sentinel values of players.NewDetail, so it never fails.
func PlayerDetail(doc *goquery.Document, vlrID int, url string) players.Detail {
	detail := players.NewDetail(vlrID, url)
	if doc == nil {
		return detail
	}
	root := doc.Selection

	if ign := Text(playerIGN.First(root)); ign != "" {
		detail.IGN = ign
	}
	if name := Text(playerRealName.First(root)); name != "" {
		detail.RealName = name
	}
	if country := Text(playerCountry.First(playerHeader.First(root))); country != "" {
		detail.Country = country
	}
	if team := Text(playerTeamName.First(playerTeamItem.First(root))); team != "" {
		detail.Team = team
	}
	if winnings, found := totalWinnings(root); found {
		detail.TotalWinnings = winnings
	}
	detail.TopAgents = topAgents(root)
	return detail
}

// totalWinnings picks the first dollar amount with a thousands separator,
// falling back to the first dollar amount on the page.
func totalWinnings(root *goquery.Selection) (string, bool) {
	first := ""
	for _, t := range textNodes(root) {
		if !strings.HasPrefix(t, winningsPrefix) {
			continue
		}
		if strings.Contains(t, winningsGrouped) {
			return t, true
		}
		if first == "" {
			first = t
		}
	}
	return first, first != ""
}

// topAgents reads the agent image of the first cell on the rows after the
// header of the first stats table.
func topAgents(root *goquery.Selection) []string {
	agents := []string{}
	table := agentTable.First(root)
	if table.Length() == 0 {
		return agents
	}
	rows := tableRow.All(table)
	for i := 1; i <= players.MaxTopAgents && i < rows.Length(); i++ {
		cell := tableCell.First(rows.Eq(i))
		if alt, ok := Attr(agentImage.First(cell), "alt"); ok && alt != "" {
			agents = append(agents, alt)
		}
	}
	return agents
}
