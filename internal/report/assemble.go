package report

import "time"

// Statistic names as they appear in the upstream game logs.
const (
	StatPoints   = "PTS"
	StatAssists  = "AST"
	StatRebounds = "REB"
)

// catalog is the fixed set of (position, statistic) tables the report
// renders. Forward and center assists are intentionally absent.
var catalog = []struct {
	pos  string
	stat string
}{
	{PosGuard, StatPoints},
	{PosGuard, StatAssists},
	{PosGuard, StatRebounds},
	{PosForward, StatPoints},
	{PosForward, StatRebounds},
	{PosCenter, StatPoints},
	{PosCenter, StatRebounds},
}

// Meta describes one report run.
type Meta struct {
	GeneratedAt time.Time
	Season      string
	SeasonType  string
	LastN       int
	Note        string
}

// Table is one ranked top/bottom table, named for its sheet/tab.
type Table struct {
	Name       string
	StatColumn string
	Rows       []RankedRow
}

// Header returns the table's column headers as written to the sinks.
func (t Table) Header() []string {
	return []string{"RANK", "GROUP", "TEAM", t.StatColumn}
}

// Report bundles the metadata record with every catalog table.
type Report struct {
	Meta   Meta
	Tables []Table
}

// Params configures one run of the pipeline.
type Params struct {
	Season      string
	SeasonType  string
	LastN       int
	TopBottomK  int
	GeneratedAt time.Time
}

// Inputs holds the fully-fetched upstream tables for one run.
type Inputs struct {
	TeamLog   []TeamGameRow
	PlayerLog []PlayerGameRow
	Bios      []PlayerBio
}

// Build runs the whole pipeline: window selection, reconciliation,
// aggregation and ranking for every catalog pair. It is a pure function of
// its arguments and performs no I/O; a pair with no qualifying teams
// produces an empty table rather than failing the run.
func Build(p Params, in Inputs) *Report {
	windows := LastNWindows(in.TeamLog, p.LastN)
	rows := Reconcile(in.PlayerLog, windows, in.Bios)
	allowed := Aggregate(rows)

	tables := make([]Table, 0, len(catalog))
	for _, c := range catalog {
		var values []TeamValue
		for _, a := range allowed {
			if a.Position != c.pos {
				continue
			}
			values = append(values, TeamValue{Team: a.Team, Value: statValue(a, c.stat)})
		}

		tables = append(tables, Table{
			Name:       c.pos + "_" + c.stat,
			StatColumn: c.stat + "_ALLOWED",
			Rows:       TopBottom(values, p.TopBottomK),
		})
	}

	return &Report{
		Meta: Meta{
			GeneratedAt: p.GeneratedAt,
			Season:      p.Season,
			SeasonType:  p.SeasonType,
			LastN:       p.LastN,
			Note:        "Positions are stats API groupings (G/F/C). Allowed stats computed from opponent player game logs.",
		},
		Tables: tables,
	}
}

func statValue(a Allowed, stat string) float64 {
	switch stat {
	case StatAssists:
		return a.Assists
	case StatRebounds:
		return a.Rebounds
	default:
		return a.Points
	}
}
