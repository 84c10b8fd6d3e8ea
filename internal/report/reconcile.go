package report

import "strings"

// Reconcile joins player game lines to the defending team's window and to
// the position table. Every filter is hard: a row that fails any of them
// is dropped, never defaulted.
//
//  1. The matchup must resolve to a defending team that has a window.
//  2. The game must be inside that team's window.
//  3. The player must have a bio row.
//  4. The bio position must classify as G, F or C.
//
// What survives is exactly the production charged against a team's recent
// defense, annotated for aggregation.
func Reconcile(players []PlayerGameRow, windows Windows, bios []PlayerBio) []Row {
	positions := make(map[int]string, len(bios))
	for _, b := range bios {
		positions[b.PlayerID] = NormalizePosition(b.Position)
	}

	var rows []Row
	for _, p := range players {
		// A matchup without both teams cannot name a defender.
		if len(strings.Fields(p.Matchup)) < 2 {
			continue
		}
		defTeam := ParseOpponent(p.Matchup)

		if !windows.Contains(defTeam, p.GameID) {
			continue
		}

		pos, ok := positions[p.PlayerID]
		if !ok || pos == PosUnknown {
			continue
		}

		rows = append(rows, Row{
			DefTeam:  defTeam,
			Position: pos,
			GameID:   p.GameID,
			Points:   p.Points,
			Assists:  p.Assists,
			Rebounds: p.Rebounds,
		})
	}

	return rows
}
