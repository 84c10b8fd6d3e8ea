package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/apollo/internal/report"
	"github.com/fortuna/apollo/internal/store"
)

// RunRepository handles archived report run access.
type RunRepository struct {
	db *store.Database
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *store.Database) *RunRepository {
	return &RunRepository{db: db}
}

// SaveReport archives one generated report: the run record plus every
// ranked row of every table, in a single transaction.
func (r *RunRepository) SaveReport(ctx context.Context, rep *report.Report, workbookPath string) (int64, error) {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning archive transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO report_runs (season, season_type, last_n, generated_at, workbook_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING run_id
	`, rep.Meta.Season, rep.Meta.SeasonType, rep.Meta.LastN, rep.Meta.GeneratedAt, workbookPath).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO report_rows (run_id, table_name, rank, rank_group, team, stat_value)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range rep.Tables {
		for _, row := range t.Rows {
			if _, err := stmt.ExecContext(ctx, runID, t.Name, row.Rank, row.Group, row.Team, row.Value); err != nil {
				return 0, fmt.Errorf("inserting row for %s: %w", t.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing archive: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]*store.Run, error) {
	query := `
		SELECT run_id, season, season_type, last_n, generated_at, workbook_path, created_at
		FROM report_runs
		ORDER BY generated_at DESC
		LIMIT $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []*store.Run
	for rows.Next() {
		run := &store.Run{}
		err := rows.Scan(
			&run.RunID, &run.Season, &run.SeasonType, &run.LastN,
			&run.GeneratedAt, &run.WorkbookPath, &run.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetRun finds one archived run by ID.
func (r *RunRepository) GetRun(ctx context.Context, runID int64) (*store.Run, error) {
	query := `
		SELECT run_id, season, season_type, last_n, generated_at, workbook_path, created_at
		FROM report_runs
		WHERE run_id = $1
	`

	run := &store.Run{}
	err := r.db.DB().QueryRowContext(ctx, query, runID).Scan(
		&run.RunID, &run.Season, &run.SeasonType, &run.LastN,
		&run.GeneratedAt, &run.WorkbookPath, &run.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %d", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run: %w", err)
	}

	return run, nil
}

// GetTable returns one archived table's rows in their ranked order.
func (r *RunRepository) GetTable(ctx context.Context, runID int64, tableName string) ([]*store.RunRow, error) {
	query := `
		SELECT run_id, table_name, rank, rank_group, team, stat_value
		FROM report_rows
		WHERE run_id = $1 AND table_name = $2
		ORDER BY rank_group DESC, rank
	`

	rows, err := r.db.DB().QueryContext(ctx, query, runID, tableName)
	if err != nil {
		return nil, fmt.Errorf("querying table rows: %w", err)
	}
	defer rows.Close()

	var result []*store.RunRow
	for rows.Next() {
		row := &store.RunRow{}
		err := rows.Scan(&row.RunID, &row.TableName, &row.Rank, &row.RankGroup, &row.Team, &row.StatValue)
		if err != nil {
			return nil, fmt.Errorf("scanning table row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
