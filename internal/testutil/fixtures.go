package testutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// MatchesPage is a listing with two complete cards, one card without a
// score and one card carrying nothing recognisable.
const MatchesPage = `<html><body>
<div class="wf-card">
  <a href="/429390/sentinels-vs-fnatic">
    <div class="match-item-time"> 4:00 PM </div>
    <div class="text-of">Sentinels</div>
    <div class="text-of">FNATIC</div>
    <div class="match-item-score">2 : 1</div>
    <div class="match-item-event-series">Upper Final</div>
  </a>
</div>
<div class="wf-card">
  <a href="/429391/loud-vs-prx">
    <div class="text-of">LOUD</div>
    <div class="text-of">Paper Rex</div>
    <div class="match-item-event-series">Lower Round 2</div>
  </a>
</div>
<div class="wf-card"><span>advert</span></div>
</body></html>`

// MatchPage is a match page with one map lacking its score node.
const MatchPage = `<html><body>
<div class="match-header">
  <div class="match-header-event">Champions Tour 2025: Masters Toronto</div>
  <div class="wf-title-med">Sentinels</div>
  <div class="wf-title-med">FNATIC</div>
</div>
<div class="vm-stats-gamesnav">
  <div class="vm-stats-gamesnav-item"><div class="map">Ascent</div><div class="score">13-11</div></div>
  <div class="vm-stats-gamesnav-item"><div class="map">Bind</div></div>
  <div class="vm-stats-gamesnav-item"><div class="map">Lotus</div><div class="score">9-13</div></div>
</div>
</body></html>`

// RankingsPage holds a header row, two team rows, a row without a flag, a
// flag without alt, and a malformed team link.
const RankingsPage = `<html><body><table>
<tr><th>Rank</th><th>Team</th></tr>
<tr><td class="rank-item-rank-num">1</td><td><a href="/team/2/sentinels">Sentinels</a><img class="flag" alt="United States"></td></tr>
<tr><td class="rank-item-rank-num">2</td><td><a href="/team/624/paper-rex">Paper Rex</a></td></tr>
<tr><td class="rank-item-rank-num">3</td><td><a href="/team/8877/mystery">Mystery</a><img class="flag"></td></tr>
<tr><td class="rank-item-rank-num">4</td><td><a href="/team/broken">Broken</a></td></tr>
</table></body></html>`

// TeamPage is a team page with a roster and more than five match links.
const TeamPage = `<html><body>
<h1 class="wf-title">Sentinels</h1>
<h2 class="team-header-tag">SEN</h2>
<div class="wf-card">
  <a href="/match/1/a">M1</a><a href="/match/2/b">M2</a><a href="/match/3/c">M3</a>
  <a href="/match/4/d">M4</a><a href="/match/5/e">M5</a><a href="/match/6/f">M6</a>
</div>
<div class="team-roster">
  <div class="team-roster-item"><a href="/player/729/zekken">zekken</a></div>
  <div class="team-roster-item"><a href="/player/9/tenz">TenZ</a></div>
  <div class="team-roster-item"><span>coach</span></div>
</div>
</body></html>`

// RosterPage is a regional stats table. The away-side row has no player
// marker and the last row has an unusable link.
const RosterPage = `<html><body><table class="wf-table mod-stats">
<tr><th>Player</th></tr>
<tr><td class="mod-player"><a href="/player/9/tenz"><div class="text-of">Zeta</div></a></td></tr>
<tr><td class="mod-player"><a href="/player/4004/aspas"><div class="text-of">alpha</div></a></td></tr>
<tr><td class="mod-opponent"><a href="/player/77/other"><div class="text-of">Other</div></a></td></tr>
<tr><td class="mod-player"><a href="/player/abc/bad"><div class="text-of">Bad</div></a></td></tr>
</table></body></html>`

// PlayerPage is a player page with every extracted section present.
const PlayerPage = `<html><body>
<div class="player-header">
  <h1 class="wf-title">TenZ</h1>
  <h2 class="player-real-name">Tyson Ngo</h2>
  <div class="ge-text-light">Canada</div>
</div>
<a class="wf-module-item" href="/team/2/sentinels"><div style="font-weight: 500;">Sentinels</div></a>
<div><span>$500</span><span>$1,234,567</span></div>
<table class="wf-table">
<tr><th>Agent</th></tr>
<tr><td><img alt="jett"></td></tr>
<tr><td><img alt="chamber"></td></tr>
<tr><td><img alt="raze"></td></tr>
<tr><td><img alt="yoru"></td></tr>
</table>
</body></html>`

// EmptyPage parses but holds nothing the extractors look for.
const EmptyPage = `<html><body><p>nothing here</p></body></html>`

// MustDocument parses markup into a goquery document.
func MustDocument(t testing.TB, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}
