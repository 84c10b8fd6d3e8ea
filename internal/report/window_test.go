package report

import (
	"fmt"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func teamGames(team string, n int) []TeamGameRow {
	rows := make([]TeamGameRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, TeamGameRow{
			TeamAbbr: team,
			GameID:   fmt.Sprintf("%s-%03d", team, i),
			GameDate: day(i),
		})
	}
	return rows
}

func TestLastNWindows_TakesMostRecentN(t *testing.T) {
	// 12 games, window of 10: the first two must fall out.
	rows := teamGames("BOS", 12)
	windows := LastNWindows(rows, 10)

	set := windows["BOS"]
	if len(set) != 10 {
		t.Fatalf("window size = %d, want 10", len(set))
	}
	for i := 0; i < 2; i++ {
		if set[fmt.Sprintf("BOS-%03d", i)] {
			t.Errorf("game %d should have aged out of the window", i)
		}
	}
	for i := 2; i < 12; i++ {
		if !set[fmt.Sprintf("BOS-%03d", i)] {
			t.Errorf("game %d missing from window", i)
		}
	}
}

func TestLastNWindows_ShortSeasonKeepsEverything(t *testing.T) {
	rows := teamGames("LAL", 4)
	windows := LastNWindows(rows, 10)

	if len(windows["LAL"]) != 4 {
		t.Errorf("window size = %d, want all 4 games (no padding)", len(windows["LAL"]))
	}
}

func TestLastNWindows_UnorderedInput(t *testing.T) {
	// Dates arrive out of order; the window must still be the latest N.
	rows := []TeamGameRow{
		{TeamAbbr: "DEN", GameID: "new", GameDate: day(5)},
		{TeamAbbr: "DEN", GameID: "old", GameDate: day(0)},
		{TeamAbbr: "DEN", GameID: "mid", GameDate: day(3)},
	}
	windows := LastNWindows(rows, 2)

	set := windows["DEN"]
	if !set["new"] || !set["mid"] {
		t.Errorf("window = %v, want {new, mid}", set)
	}
	if set["old"] {
		t.Error("oldest game must not be in a 2-game window")
	}
}

func TestLastNWindows_SameDateTiesAreStable(t *testing.T) {
	// Two games on the same date: input order decides which one stays
	// when the window cuts between them.
	rows := []TeamGameRow{
		{TeamAbbr: "MIA", GameID: "a", GameDate: day(1)},
		{TeamAbbr: "MIA", GameID: "b", GameDate: day(1)},
		{TeamAbbr: "MIA", GameID: "c", GameDate: day(2)},
	}
	windows := LastNWindows(rows, 2)

	set := windows["MIA"]
	if !set["b"] || !set["c"] {
		t.Errorf("window = %v, want {b, c} (stable tie keeps later input row)", set)
	}
	if set["a"] {
		t.Error("first same-date row should have been cut")
	}
}

func TestLastNWindows_TeamsAreIndependent(t *testing.T) {
	rows := append(teamGames("BOS", 12), teamGames("LAL", 3)...)
	windows := LastNWindows(rows, 10)

	if len(windows["BOS"]) != 10 {
		t.Errorf("BOS window = %d, want 10", len(windows["BOS"]))
	}
	if len(windows["LAL"]) != 3 {
		t.Errorf("LAL window = %d, want 3", len(windows["LAL"]))
	}
}

func TestWindowsContains_UnknownTeam(t *testing.T) {
	windows := LastNWindows(teamGames("BOS", 5), 10)

	if windows.Contains("ZZZ", "BOS-000") {
		t.Error("unknown team must contain nothing")
	}
	if windows.Contains("BOS", "nope") {
		t.Error("game outside the log must not be in the window")
	}
}
