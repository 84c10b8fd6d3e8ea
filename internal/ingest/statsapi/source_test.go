package statsapi

import (
	"context"
	"strings"
	"testing"
)

// fakeFetcher serves canned bodies keyed by endpoint substring.
type fakeFetcher struct {
	bodies map[string]string
	urls   []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	for key, body := range f.bodies {
		if strings.Contains(url, key) {
			return []byte(body), nil
		}
	}
	return nil, context.Canceled
}

const teamLogBody = `{
	"resultSets": [{
		"name": "LeagueGameLog",
		"headers": ["TEAM_ID", "TEAM_ABBREVIATION", "GAME_ID", "GAME_DATE"],
		"rowSet": [
			[1610612738, "BOS", "0022400001", "2024-10-22"],
			[1610612747, "LAL", "0022400001", "2024-10-22"]
		]
	}]
}`

const playerLogBody = `{
	"resultSets": [{
		"name": "LeagueGameLog",
		"headers": ["GAME_ID", "MATCHUP", "PLAYER_ID", "PTS", "AST", "REB"],
		"rowSet": [
			["0022400001", "BOS vs. LAL", 1628369, 31, 5, 8.0]
		]
	}]
}`

const bioBody = `{
	"resultSets": [{
		"name": "LeagueDashPlayerBioStats",
		"headers": ["PLAYER_ID", "PLAYER_NAME", "POSITION"],
		"rowSet": [
			[1628369, "Jayson Tatum", "F"]
		]
	}]
}`

func newTestClient() (*Client, *fakeFetcher) {
	f := &fakeFetcher{bodies: map[string]string{
		"PlayerOrTeam=T":           teamLogBody,
		"PlayerOrTeam=P":           playerLogBody,
		"leaguedashplayerbiostats": bioBody,
	}}
	return New("https://example.test/stats", f), f
}

func TestTeamGameLogs(t *testing.T) {
	client, f := newTestClient()

	rows, err := client.TeamGameLogs(context.Background(), "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("TeamGameLogs error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	r := rows[0]
	if r.TeamAbbr != "BOS" || r.GameID != "0022400001" {
		t.Errorf("row = %+v", r)
	}
	if r.GameDate.Year() != 2024 || r.GameDate.Month() != 10 || r.GameDate.Day() != 22 {
		t.Errorf("GameDate = %v, want 2024-10-22", r.GameDate)
	}

	// Season parameters must reach the URL.
	if len(f.urls) != 1 || !strings.Contains(f.urls[0], "Season=2024-25") {
		t.Errorf("request URL = %v", f.urls)
	}
}

func TestPlayerGameLogs(t *testing.T) {
	client, _ := newTestClient()

	rows, err := client.PlayerGameLogs(context.Background(), "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("PlayerGameLogs error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.PlayerID != 1628369 || r.Matchup != "BOS vs. LAL" {
		t.Errorf("row = %+v", r)
	}
	if r.Points != 31 || r.Assists != 5 || r.Rebounds != 8 {
		t.Errorf("stats = %v/%v/%v, want 31/5/8", r.Points, r.Assists, r.Rebounds)
	}
}

func TestPlayerBios_ProbesPositionColumn(t *testing.T) {
	client, _ := newTestClient()

	rows, err := client.PlayerBios(context.Background(), "2024-25", "Regular Season")
	if err != nil {
		t.Fatalf("PlayerBios error: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Position != "F" || rows[0].Name != "Jayson Tatum" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestPlayerBios_SchemaErrorIsFatalAndDescriptive(t *testing.T) {
	noPosition := `{
		"resultSets": [{
			"name": "LeagueDashPlayerBioStats",
			"headers": ["PLAYER_ID", "PLAYER_NAME", "HEIGHT"],
			"rowSet": [[1, "Someone", "6-8"]]
		}]
	}`
	f := &fakeFetcher{bodies: map[string]string{"leaguedashplayerbiostats": noPosition}}
	client := New("https://example.test/stats", f)

	_, err := client.PlayerBios(context.Background(), "2024-25", "Regular Season")
	if err == nil {
		t.Fatal("expected schema error when no position column exists")
	}
	if !strings.Contains(err.Error(), "PLAYER_POSITION") || !strings.Contains(err.Error(), "HEIGHT") {
		t.Errorf("error %q should name candidates and actual headers", err)
	}
}

func TestParseGameDate_Layouts(t *testing.T) {
	for _, s := range []string{"2024-10-22", "2024-10-22T00:00:00", "Oct 22, 2024"} {
		d, err := parseGameDate(s)
		if err != nil {
			t.Errorf("parseGameDate(%q) error: %v", s, err)
			continue
		}
		if d.Day() != 22 {
			t.Errorf("parseGameDate(%q) = %v", s, d)
		}
	}

	if _, err := parseGameDate("yesterday"); err == nil {
		t.Error("expected error for unrecognized date")
	}
}
