package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TongAlan/val-api/internal/domain/teams"
	"github.com/TongAlan/val-api/internal/testutil"
)

func TestTeamListExtractsRows(t *testing.T) {
	results := TeamList(testutil.MustDocument(t, testutil.RankingsPage), base)
	records, errs := Split(results)

	require.Len(t, records, 3)
	require.Equal(t, teams.Summary{
		Name:    "Sentinels",
		URL:     base + "/team/2/sentinels",
		TeamID:  "2",
		Country: "United States",
		Rank:    "1",
	}, records[0])

	require.Equal(t, "624", records[1].TeamID)
	require.Empty(t, records[1].Country)
	require.Equal(t, "Unknown", records[2].Country)

	require.Len(t, errs, 1)
	var extractErr *ExtractionError
	require.True(t, errors.As(errs[0], &extractErr))
	require.Equal(t, KindTeam, extractErr.Kind)
	require.Contains(t, extractErr.Reason, "/team/broken")
}

func TestTeamListSkipsRowsWithoutTeamLink(t *testing.T) {
	doc := testutil.MustDocument(t, `<table><tr><td>1</td><td><img class="flag" alt="Korea"></td></tr></table>`)
	require.Empty(t, TeamList(doc, base))
}

func TestTeamDetail(t *testing.T) {
	detail := TeamDetail(testutil.MustDocument(t, testutil.TeamPage), base)
	require.NotNil(t, detail)
	require.Equal(t, "Sentinels", detail.Name)
	require.Equal(t, "SEN", detail.Tag)
	require.Equal(t, []teams.PlayerRef{
		{Name: "zekken", URL: base + "/player/729/zekken"},
		{Name: "TenZ", URL: base + "/player/9/tenz"},
	}, detail.Players)
	require.Len(t, detail.RecentMatches, 5)
	require.Equal(t, teams.MatchRef{URL: base + "/match/1/a", Text: "M1"}, detail.RecentMatches[0])
	require.Equal(t, "M5", detail.RecentMatches[4].Text)
}

func TestTeamDetailEmptyPage(t *testing.T) {
	detail := TeamDetail(testutil.MustDocument(t, testutil.EmptyPage), base)
	require.NotNil(t, detail)
	require.True(t, detail.IsEmpty())
	require.Nil(t, TeamDetail(nil, base))
}
