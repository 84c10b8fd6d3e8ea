// Package ingest defines the upstream data contracts the report pipeline
// consumes. Implementations must return complete tables or fail hard;
// retries and backoff live behind this boundary, never in the pipeline.
package ingest

import (
	"context"

	"github.com/fortuna/apollo/internal/report"
)

// Source produces the season's tabular inputs for one run.
type Source interface {
	// TeamGameLogs returns one row per team per game played.
	TeamGameLogs(ctx context.Context, season, seasonType string) ([]report.TeamGameRow, error)

	// PlayerGameLogs returns one row per player per game played.
	PlayerGameLogs(ctx context.Context, season, seasonType string) ([]report.PlayerGameRow, error)

	// PlayerBios returns one position row per player for the season.
	PlayerBios(ctx context.Context, season, seasonType string) ([]report.PlayerBio, error)
}
