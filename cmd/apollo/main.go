package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fortuna/apollo/internal/config"
	"github.com/fortuna/apollo/internal/ingest"
	"github.com/fortuna/apollo/internal/ingest/headless"
	"github.com/fortuna/apollo/internal/ingest/statsapi"
	"github.com/fortuna/apollo/internal/publisher"
	"github.com/fortuna/apollo/internal/report"
	"github.com/fortuna/apollo/internal/schedule"
	"github.com/fortuna/apollo/internal/sink"
	"github.com/fortuna/apollo/internal/store"
	"github.com/fortuna/apollo/internal/store/repository"
)

const (
	serviceName    = "apollo"
	serviceVersion = "1.2.0"
)

func main() {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	now, err := nowEastern()
	if err != nil {
		log.Fatalf("Failed to load Eastern timezone: %v", err)
	}

	cfg, err := config.FromEnv(now)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Scheduled invocations outside the window exit silently, before any
	// output, so cron noise stays out of the logs.
	gate, err := schedule.Default(cfg.ForceRun)
	if err != nil {
		log.Fatalf("Failed to build schedule gate: %v", err)
	}
	if !gate.ShouldRun(now) {
		os.Exit(0)
	}

	log.Printf("Starting %s v%s - positional defense report", serviceName, serviceVersion)
	log.Printf("Season=%s | SeasonType=%s | LastNGamesPerTeam=%d", cfg.Season, cfg.SeasonType, cfg.LastN)

	ctx := context.Background()

	source, cleanup, err := newSource(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stats source: %v", err)
	}
	defer cleanup()

	bios, err := source.PlayerBios(ctx, cfg.Season, cfg.SeasonType)
	if err != nil {
		log.Fatalf("Failed to fetch player bios: %v", err)
	}
	log.Printf("✓ Fetched %d player bios", len(bios))

	teamLog, err := source.TeamGameLogs(ctx, cfg.Season, cfg.SeasonType)
	if err != nil {
		log.Fatalf("Failed to fetch team game log: %v", err)
	}
	log.Printf("✓ Fetched %d team game log rows", len(teamLog))

	playerLog, err := source.PlayerGameLogs(ctx, cfg.Season, cfg.SeasonType)
	if err != nil {
		log.Fatalf("Failed to fetch player game log: %v", err)
	}
	log.Printf("✓ Fetched %d player game log rows", len(playerLog))

	rep := report.Build(report.Params{
		Season:      cfg.Season,
		SeasonType:  cfg.SeasonType,
		LastN:       cfg.LastN,
		TopBottomK:  cfg.TopBottomK,
		GeneratedAt: now,
	}, report.Inputs{
		TeamLog:   teamLog,
		PlayerLog: playerLog,
		Bios:      bios,
	})

	// The workbook is the primary artifact; everything after it is
	// best-effort and must not invalidate a file already on disk.
	path := sink.WorkbookPath(cfg.OutputDir, rep.Meta)
	if err := sink.WriteWorkbook(path, rep); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}
	log.Printf("✓ Wrote workbook: %s", path)

	updateSheet(ctx, cfg, rep)
	archiveRun(ctx, cfg, rep, path)
	publishEvent(ctx, cfg, rep, path)

	log.Printf("✓ %s run complete", serviceName)
}

// newSource selects the fetch mechanism. The browser transport exists for
// environments where the stats API blocks plain HTTP clients.
func newSource(cfg *config.Config) (ingest.Source, func(), error) {
	if cfg.FetchMode == config.FetchModeBrowser {
		fetcher, err := headless.NewFetcher()
		if err != nil {
			return nil, nil, err
		}
		log.Println("Using headless browser transport")
		return statsapi.New("", fetcher), fetcher.Close, nil
	}
	return statsapi.New("", nil), func() {}, nil
}

func updateSheet(ctx context.Context, cfg *config.Config, rep *report.Report) {
	if cfg.GoogleServiceJSON == "" || cfg.SpreadsheetID == "" {
		log.Println("Skipped Google Sheets update (missing GSERVICE_JSON and/or GOOGLE_SHEET_ID)")
		return
	}

	updater, err := sink.NewSheetsUpdater(ctx, []byte(cfg.GoogleServiceJSON), cfg.SpreadsheetID)
	if err != nil {
		log.Printf("⚠️  Google Sheets auth failed (workbook already written, retry later): %v", err)
		return
	}

	if err := updater.Update(ctx, rep); err != nil {
		log.Printf("⚠️  Google Sheets update failed (workbook already written, retry later): %v", err)
		return
	}

	log.Println("✓ Updated Google Sheet")
}

func archiveRun(ctx context.Context, cfg *config.Config, rep *report.Report, workbookPath string) {
	if cfg.ArchiveDSN == "" {
		return
	}

	db, err := store.NewDatabase(cfg.ArchiveDSN)
	if err != nil {
		log.Printf("⚠️  Archive database unavailable: %v", err)
		return
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Printf("⚠️  Archive migrations failed: %v", err)
		return
	}

	runID, err := repository.NewRunRepository(db).SaveReport(ctx, rep, workbookPath)
	if err != nil {
		log.Printf("⚠️  Failed to archive run: %v", err)
		return
	}

	log.Printf("✓ Archived run %d", runID)
}

func publishEvent(ctx context.Context, cfg *config.Config, rep *report.Report, workbookPath string) {
	if cfg.RedisURL == "" {
		return
	}

	pub, err := publisher.NewReportPublisher(cfg.RedisURL)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, skipping report event: %v", err)
		return
	}
	defer pub.Close()

	if err := pub.PublishReportGenerated(ctx, rep.Meta, workbookPath); err != nil {
		log.Printf("⚠️  Failed to publish report event: %v", err)
		return
	}

	log.Println("✓ Published report event")
}

func nowEastern() (time.Time, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}
