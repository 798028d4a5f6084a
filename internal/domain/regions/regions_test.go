package regions

import "testing"

func TestParseIsCaseInsensitive(t *testing.T) {
	cases := []struct {
		raw  string
		want Region
	}{
		{"americas", Americas},
		{"AMERICAS", Americas},
		{"Emea", EMEA},
		{"apac", APAC},
		{"China", China},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.raw, PlayerRegions)
		if !ok || got != tc.want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", tc.raw, got, ok, tc.want)
		}
	}
}

func TestParseRejectsOutsideAllowed(t *testing.T) {
	if _, ok := Parse("global", PlayerRegions); ok {
		t.Fatalf("expected global to be rejected for players")
	}
	if got, ok := Parse("GLOBAL", TeamRegions); !ok || got != Global {
		t.Fatalf("expected global accepted for teams, got %q %v", got, ok)
	}
	for _, raw := range []string{"", "na", "europe", "americas/x"} {
		if _, ok := Parse(raw, TeamRegions); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join(PlayerRegions); got != "americas, emea, apac, china" {
		t.Fatalf("unexpected join %q", got)
	}
}
