package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/TongAlan/val-api/internal/domain/matches"
	"github.com/TongAlan/val-api/internal/domain/players"
	"github.com/TongAlan/val-api/internal/domain/teams"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func renderMatches(out io.Writer, list []matches.Summary) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Time", "Team 1", "Score", "Team 2", "Tournament"})
	for _, m := range list {
		t.AppendRow(table.Row{m.Time, m.Team1, m.Score, m.Team2, m.Tournament})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(list)})
	t.Render()
}

func renderMatch(out io.Writer, d *matches.Detail) {
	t := newTable(out)
	t.SetTitle("%s vs %s", d.Team1, d.Team2)
	t.AppendHeader(table.Row{"Map", "Score"})
	for _, m := range d.Maps {
		t.AppendRow(table.Row{m.Map, m.Score})
	}
	if d.Tournament != "" {
		t.SetCaption("%s", d.Tournament)
	}
	t.Render()
}

func renderTeams(out io.Writer, list []teams.Summary) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Rank", "Team", "ID", "Country"})
	for _, s := range list {
		t.AppendRow(table.Row{s.Rank, s.Name, s.TeamID, s.Country})
	}
	t.Render()
}

func renderTeam(out io.Writer, d *teams.Detail) {
	t := newTable(out)
	title := d.Name
	if d.Tag != "" {
		title += " [" + d.Tag + "]"
	}
	t.SetTitle("%s", title)
	t.AppendHeader(table.Row{"Players", "Recent matches"})

	rows := max(len(d.Players), len(d.RecentMatches))
	for i := 0; i < rows; i++ {
		row := table.Row{"", ""}
		if i < len(d.Players) {
			row[0] = d.Players[i].Name
		}
		if i < len(d.RecentMatches) {
			row[1] = d.RecentMatches[i].Text
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderPlayers(out io.Writer, list []players.Detail) {
	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "IGN", "Name", "Team", "Country", "Winnings", "Agents"})
	for _, p := range list {
		t.AppendRow(playerRow(p))
	}
	t.Render()
}

func renderPlayer(out io.Writer, p *players.Detail) {
	renderPlayers(out, []players.Detail{*p})
}

func playerRow(p players.Detail) table.Row {
	return table.Row{p.VlrID, p.IGN, p.RealName, p.Team, p.Country, p.TotalWinnings, strings.Join(p.TopAgents, ", ")}
}
