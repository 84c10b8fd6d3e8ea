package report

import "time"

// TeamGameRow is one team-side row from the league game log.
// The league log carries one row per team per game played.
type TeamGameRow struct {
	TeamID   int
	TeamAbbr string
	GameID   string
	GameDate time.Time
}

// PlayerGameRow is one player's counting line in one game.
// Matchup encodes both teams, e.g. "BOS vs. LAL" or "BOS @ LAL".
type PlayerGameRow struct {
	GameID   string
	Matchup  string
	PlayerID int
	Points   float64
	Assists  float64
	Rebounds float64
}

// PlayerBio carries a player's raw position label for the season.
// Positions are treated as season-invariant.
type PlayerBio struct {
	PlayerID int
	Name     string
	Position string
}

// Row is a player game line that survived reconciliation, annotated with
// the defending team and the player's position group.
type Row struct {
	DefTeam  string
	Position string
	GameID   string
	Points   float64
	Assists  float64
	Rebounds float64
}

// Allowed is the average per-game production a team gives up to one
// position group across that team's window.
type Allowed struct {
	Team     string
	Position string
	Points   float64
	Assists  float64
	Rebounds float64
}
