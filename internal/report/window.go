package report

import "sort"

// Windows maps a team abbreviation to the set of game IDs inside that
// team's rolling window of most recent games.
type Windows map[string]map[string]bool

// Contains reports whether gameID is inside team's window. Teams with no
// window entry (unknown or misspelled abbreviation) contain nothing.
func (w Windows) Contains(team, gameID string) bool {
	return w[team][gameID]
}

// LastNWindows builds the per-team window of the n most recent games from
// the full-season team game log. Rows are sorted by date within each team;
// same-date ties keep their original log order so the result is
// reproducible. A team with fewer than n games keeps everything it has.
func LastNWindows(rows []TeamGameRow, n int) Windows {
	byTeam := make(map[string][]TeamGameRow)
	for _, r := range rows {
		byTeam[r.TeamAbbr] = append(byTeam[r.TeamAbbr], r)
	}

	windows := make(Windows, len(byTeam))
	for team, games := range byTeam {
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].GameDate.Before(games[j].GameDate)
		})

		start := len(games) - n
		if start < 0 {
			start = 0
		}

		set := make(map[string]bool, len(games)-start)
		for _, g := range games[start:] {
			set[g.GameID] = true
		}
		windows[team] = set
	}

	return windows
}
