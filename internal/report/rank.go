package report

import "sort"

// Rank group labels.
const (
	GroupMost  = "MOST ALLOWED"
	GroupLeast = "LEAST ALLOWED"
)

// TeamValue is one team's allowed rate for a single statistic.
type TeamValue struct {
	Team  string
	Value float64
}

// RankedRow is one line of a top/bottom table.
type RankedRow struct {
	Rank  int
	Group string
	Team  string
	Value float64
}

// TopBottom sorts teams by value descending and emits the top k as
// "MOST ALLOWED" followed by the bottom k re-sorted ascending as
// "LEAST ALLOWED", each group ranked 1..k independently. Sorting is
// stable, so ties keep their input order. When fewer than 2k teams
// exist the groups overlap; that duplication is kept on purpose.
func TopBottom(values []TeamValue, k int) []RankedRow {
	desc := make([]TeamValue, len(values))
	copy(desc, values)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].Value > desc[j].Value
	})

	take := k
	if take > len(desc) {
		take = len(desc)
	}

	rows := make([]RankedRow, 0, 2*take)
	for i, tv := range desc[:take] {
		rows = append(rows, RankedRow{Rank: i + 1, Group: GroupMost, Team: tv.Team, Value: tv.Value})
	}

	asc := make([]TeamValue, take)
	copy(asc, desc[len(desc)-take:])
	sort.SliceStable(asc, func(i, j int) bool {
		return asc[i].Value < asc[j].Value
	})
	for i, tv := range asc {
		rows = append(rows, RankedRow{Rank: i + 1, Group: GroupLeast, Team: tv.Team, Value: tv.Value})
	}

	return rows
}
