package store

import "time"

// Run is one archived report generation.
type Run struct {
	RunID        int64     `json:"run_id" db:"run_id"`
	Season       string    `json:"season" db:"season"`
	SeasonType   string    `json:"season_type" db:"season_type"`
	LastN        int       `json:"last_n" db:"last_n"`
	GeneratedAt  time.Time `json:"generated_at" db:"generated_at"`
	WorkbookPath string    `json:"workbook_path" db:"workbook_path"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RunRow is one ranked line of one archived table.
type RunRow struct {
	RunID     int64   `json:"run_id" db:"run_id"`
	TableName string  `json:"table_name" db:"table_name"`
	Rank      int     `json:"rank" db:"rank"`
	RankGroup string  `json:"group" db:"rank_group"`
	Team      string  `json:"team" db:"team"`
	StatValue float64 `json:"stat_value" db:"stat_value"`
}
