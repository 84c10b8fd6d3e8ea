package report

import (
	"fmt"
	"reflect"
	"testing"
)

func TestTopBottom_SmallLeagueFullOverlap(t *testing.T) {
	// Three teams, K=10: every team appears in both groups, the bottom
	// group in reverse order of the top group.
	values := []TeamValue{
		{Team: "TEAM_A", Value: 22.5},
		{Team: "TEAM_B", Value: 30.0},
		{Team: "TEAM_C", Value: 18.0},
	}

	rows := TopBottom(values, 10)
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}

	want := []RankedRow{
		{Rank: 1, Group: GroupMost, Team: "TEAM_B", Value: 30.0},
		{Rank: 2, Group: GroupMost, Team: "TEAM_A", Value: 22.5},
		{Rank: 3, Group: GroupMost, Team: "TEAM_C", Value: 18.0},
		{Rank: 1, Group: GroupLeast, Team: "TEAM_C", Value: 18.0},
		{Rank: 2, Group: GroupLeast, Team: "TEAM_A", Value: 22.5},
		{Rank: 3, Group: GroupLeast, Team: "TEAM_B", Value: 30.0},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v\nwant %+v", rows, want)
	}
}

func TestTopBottom_ExactlyTenTeams(t *testing.T) {
	values := make([]TeamValue, 10)
	for i := range values {
		values[i] = TeamValue{Team: string(rune('A' + i)), Value: float64(i)}
	}

	rows := TopBottom(values, 10)
	if len(rows) != 20 {
		t.Fatalf("rows = %d, want 20 (both groups hold all ten teams)", len(rows))
	}

	// Bottom group must be the top group reversed.
	for i := 0; i < 10; i++ {
		top := rows[i]
		bottom := rows[19-i]
		if top.Team != bottom.Team || top.Value != bottom.Value {
			t.Errorf("row %d: top %+v does not mirror bottom %+v", i, top, bottom)
		}
	}
}

func TestTopBottom_MoreThanTwoK(t *testing.T) {
	values := make([]TeamValue, 30)
	for i := range values {
		values[i] = TeamValue{Team: fmt.Sprintf("T%02d", i), Value: float64(30 - i)}
	}

	rows := TopBottom(values, 10)
	if len(rows) != 20 {
		t.Fatalf("rows = %d, want 20", len(rows))
	}
	if rows[0].Team != "T00" || rows[0].Rank != 1 {
		t.Errorf("top rank 1 = %+v, want team T00", rows[0])
	}
	// The last input team has the smallest value, so it leads LEAST ALLOWED.
	if rows[10].Group != GroupLeast || rows[10].Rank != 1 {
		t.Errorf("row 10 = %+v, want LEAST ALLOWED rank 1", rows[10])
	}
	if rows[10].Value != 1 {
		t.Errorf("least allowed leader value = %v, want 1", rows[10].Value)
	}
}

func TestTopBottom_IdempotentOnSortedInput(t *testing.T) {
	values := []TeamValue{
		{Team: "X", Value: 50},
		{Team: "Y", Value: 40},
		{Team: "Z", Value: 30},
	}

	first := TopBottom(values, 10)
	second := TopBottom(values, 10)
	if !reflect.DeepEqual(first, second) {
		t.Error("ranking the same input twice must yield identical tables")
	}
}

func TestTopBottom_TiesKeepInputOrder(t *testing.T) {
	values := []TeamValue{
		{Team: "FIRST", Value: 25},
		{Team: "SECOND", Value: 25},
		{Team: "THIRD", Value: 10},
	}

	rows := TopBottom(values, 10)
	if rows[0].Team != "FIRST" || rows[1].Team != "SECOND" {
		t.Errorf("tied teams reordered: got %s, %s", rows[0].Team, rows[1].Team)
	}
}

func TestTopBottom_Empty(t *testing.T) {
	if rows := TopBottom(nil, 10); len(rows) != 0 {
		t.Errorf("rows = %d, want 0 for empty input", len(rows))
	}
}
