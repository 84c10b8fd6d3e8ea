package statsapi

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/apollo/internal/report"
)

// positionColumns are the header names the bio table has used for the
// position label, probed in order.
var positionColumns = []string{"PLAYER_POSITION", "POSITION", "POS"}

var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05", "Jan 02, 2006"}

// TeamGameLogs fetches the season's team game log.
func (c *Client) TeamGameLogs(ctx context.Context, season, seasonType string) ([]report.TeamGameRow, error) {
	rs, err := c.leagueGameLog(ctx, season, seasonType, "T")
	if err != nil {
		return nil, fmt.Errorf("fetching team game log: %w", err)
	}

	teamID, err := rs.ProbeColumn("TEAM_ID")
	if err != nil {
		return nil, err
	}
	teamAbbr, err := rs.ProbeColumn("TEAM_ABBREVIATION")
	if err != nil {
		return nil, err
	}
	gameID, err := rs.ProbeColumn("GAME_ID")
	if err != nil {
		return nil, err
	}
	gameDate, err := rs.ProbeColumn("GAME_DATE")
	if err != nil {
		return nil, err
	}

	rows := make([]report.TeamGameRow, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		date, err := parseGameDate(asString(raw[gameDate]))
		if err != nil {
			return nil, fmt.Errorf("parsing team game log: %w", err)
		}
		rows = append(rows, report.TeamGameRow{
			TeamID:   asInt(raw[teamID]),
			TeamAbbr: asString(raw[teamAbbr]),
			GameID:   asString(raw[gameID]),
			GameDate: date,
		})
	}
	return rows, nil
}

// PlayerGameLogs fetches the season's player game log.
func (c *Client) PlayerGameLogs(ctx context.Context, season, seasonType string) ([]report.PlayerGameRow, error) {
	rs, err := c.leagueGameLog(ctx, season, seasonType, "P")
	if err != nil {
		return nil, fmt.Errorf("fetching player game log: %w", err)
	}

	gameID, err := rs.ProbeColumn("GAME_ID")
	if err != nil {
		return nil, err
	}
	matchup, err := rs.ProbeColumn("MATCHUP")
	if err != nil {
		return nil, err
	}
	playerID, err := rs.ProbeColumn("PLAYER_ID")
	if err != nil {
		return nil, err
	}
	pts, err := rs.ProbeColumn("PTS")
	if err != nil {
		return nil, err
	}
	ast, err := rs.ProbeColumn("AST")
	if err != nil {
		return nil, err
	}
	reb, err := rs.ProbeColumn("REB")
	if err != nil {
		return nil, err
	}

	rows := make([]report.PlayerGameRow, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		rows = append(rows, report.PlayerGameRow{
			GameID:   asString(raw[gameID]),
			Matchup:  asString(raw[matchup]),
			PlayerID: asInt(raw[playerID]),
			Points:   asFloat(raw[pts]),
			Assists:  asFloat(raw[ast]),
			Rebounds: asFloat(raw[reb]),
		})
	}
	return rows, nil
}

// PlayerBios fetches the season's player bio table and extracts the
// position label, probing the known header variants.
func (c *Client) PlayerBios(ctx context.Context, season, seasonType string) ([]report.PlayerBio, error) {
	rs, err := c.playerBioStats(ctx, season, seasonType)
	if err != nil {
		return nil, fmt.Errorf("fetching player bio stats: %w", err)
	}

	playerID, err := rs.ProbeColumn("PLAYER_ID")
	if err != nil {
		return nil, err
	}
	name, err := rs.ProbeColumn("PLAYER_NAME")
	if err != nil {
		return nil, err
	}
	position, err := rs.ProbeColumn(positionColumns...)
	if err != nil {
		return nil, err
	}

	rows := make([]report.PlayerBio, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		rows = append(rows, report.PlayerBio{
			PlayerID: asInt(raw[playerID]),
			Name:     asString(raw[name]),
			Position: asString(raw[position]),
		})
	}
	return rows, nil
}

func parseGameDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized game date %q", s)
}
