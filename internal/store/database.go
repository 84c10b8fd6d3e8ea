// Package store holds the optional Postgres archive of generated reports.
// The pipeline never touches it; cmd/apollo writes a run after the sinks
// succeed and cmd/reportd reads runs back out.
package store

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database wraps the archive PostgreSQL connection.
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase opens and pings the archive database.
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{conn: db, dsn: dsn}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// migrations are applied in order and tracked in schema_migrations. The
// schema is small enough to carry inline rather than as files on disk.
var migrations = []struct {
	version string
	sql     string
}{
	{
		version: "001_create_report_runs",
		sql: `
			CREATE TABLE IF NOT EXISTS report_runs (
				run_id        BIGSERIAL PRIMARY KEY,
				season        VARCHAR(16) NOT NULL,
				season_type   VARCHAR(32) NOT NULL,
				last_n        INT NOT NULL,
				generated_at  TIMESTAMPTZ NOT NULL,
				workbook_path TEXT NOT NULL,
				created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "002_create_report_rows",
		sql: `
			CREATE TABLE IF NOT EXISTS report_rows (
				run_id     BIGINT NOT NULL REFERENCES report_runs(run_id) ON DELETE CASCADE,
				table_name VARCHAR(16) NOT NULL,
				rank       INT NOT NULL,
				rank_group VARCHAR(16) NOT NULL,
				team       VARCHAR(8) NOT NULL,
				stat_value DOUBLE PRECISION NOT NULL,
				PRIMARY KEY (run_id, table_name, rank_group, rank)
			)
		`,
	},
}

// RunMigrations applies any unapplied schema migrations.
func (db *Database) RunMigrations() error {
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m.version, m.sql); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("✓ All migrations completed successfully")
	return nil
}

func (db *Database) createMigrationsTable() error {
	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := db.conn.Exec(query)
	return err
}

func (db *Database) runMigration(version, query string) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  ✓ Applied %s", version)
	return nil
}
