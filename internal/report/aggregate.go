package report

type groupKey struct {
	team string
	pos  string
}

type gameKey struct {
	team string
	pos  string
	game string
}

type statLine struct {
	points   float64
	assists  float64
	rebounds float64
	games    int
}

// Aggregate reduces reconciled rows to per-team-per-position allowed rates.
//
// Phase 1 sums each stat per (defending team, position, game), so one game's
// total for a position group counts once no matter how many players of that
// position appeared in it. Phase 2 averages the phase-1 totals across games.
// A (team, position) pair with no surviving rows simply has no entry.
//
// Output order is the first-appearance order of (team, position) in the
// input, which keeps the whole pipeline deterministic for identical inputs.
func Aggregate(rows []Row) []Allowed {
	perGame := make(map[gameKey]*statLine)
	var gameOrder []gameKey

	for _, r := range rows {
		k := gameKey{team: r.DefTeam, pos: r.Position, game: r.GameID}
		line, ok := perGame[k]
		if !ok {
			line = &statLine{}
			perGame[k] = line
			gameOrder = append(gameOrder, k)
		}
		line.points += r.Points
		line.assists += r.Assists
		line.rebounds += r.Rebounds
	}

	totals := make(map[groupKey]*statLine)
	var groupOrder []groupKey

	for _, k := range gameOrder {
		gk := groupKey{team: k.team, pos: k.pos}
		line, ok := totals[gk]
		if !ok {
			line = &statLine{}
			totals[gk] = line
			groupOrder = append(groupOrder, gk)
		}
		g := perGame[k]
		line.points += g.points
		line.assists += g.assists
		line.rebounds += g.rebounds
		line.games++
	}

	allowed := make([]Allowed, 0, len(groupOrder))
	for _, gk := range groupOrder {
		t := totals[gk]
		n := float64(t.games)
		allowed = append(allowed, Allowed{
			Team:     gk.team,
			Position: gk.pos,
			Points:   t.points / n,
			Assists:  t.assists / n,
			Rebounds: t.rebounds / n,
		})
	}

	return allowed
}
