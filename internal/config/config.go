package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Fetch modes for the stats API transport.
const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Config holds everything one run needs. The pipeline itself never reads
// the environment; this struct is built once in main and passed down.
type Config struct {
	Season     string
	SeasonType string
	LastN      int
	TopBottomK int

	OutputDir string
	FetchMode string
	ForceRun  bool

	// Google Sheets sink, active only when both are set.
	GoogleServiceJSON string
	SpreadsheetID     string

	// Optional run archive and completion event.
	ArchiveDSN string
	RedisURL   string

	// Report API (cmd/reportd).
	RESTPort string
}

// FromEnv builds the run configuration from the environment, deriving the
// season from now when SEASON is unset.
func FromEnv(now time.Time) (*Config, error) {
	lastN := 10
	if raw := os.Getenv("LAST_N_GAMES_PER_TEAM"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid LAST_N_GAMES_PER_TEAM %q", raw)
		}
		lastN = n
	}

	return &Config{
		Season:            getEnv("SEASON", SeasonString(now)),
		SeasonType:        getEnv("SEASON_TYPE", "Regular Season"),
		LastN:             lastN,
		TopBottomK:        10,
		OutputDir:         getEnv("OUTPUT_DIR", "output"),
		FetchMode:         getEnv("FETCH_MODE", FetchModeHTTP),
		ForceRun:          os.Getenv("FORCE_RUN") == "1",
		GoogleServiceJSON: os.Getenv("GSERVICE_JSON"),
		SpreadsheetID:     os.Getenv("GOOGLE_SHEET_ID"),
		ArchiveDSN:        os.Getenv("ARCHIVE_DSN"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RESTPort:          getEnv("REST_PORT", "8080"),
	}, nil
}

// SeasonString derives the season label for a date. Seasons roll over in
// October: from October onward the season starts in the current year,
// before October it started the year prior. November 2024 -> "2024-25",
// September 2024 -> "2023-24".
func SeasonString(t time.Time) string {
	start := t.Year()
	if t.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
