// Package sink writes the assembled report to its output targets: an xlsx
// workbook on disk and, when configured, a Google Sheet. Sinks consume a
// finished report; none of them reach back into the pipeline.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/fortuna/apollo/internal/report"
)

// WorkbookPath builds the artifact filename. Window size, season and
// generation timestamp are all encoded so any workbook is traceable to
// its run without opening it.
func WorkbookPath(dir string, meta report.Meta) string {
	stamp := meta.GeneratedAt.Format("2006-01-02_1504_ET")
	name := fmt.Sprintf("allowed_by_position_last%d_%s_%s.xlsx", meta.LastN, meta.Season, stamp)
	return filepath.Join(dir, name)
}

// WriteWorkbook writes the README metadata sheet plus one sheet per
// catalog table to path, creating the directory if needed.
func WriteWorkbook(path string, rep *report.Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "README"); err != nil {
		return fmt.Errorf("renaming README sheet: %w", err)
	}
	if err := writeRows(f, "README", MetaValues(rep.Meta)); err != nil {
		return err
	}

	for _, t := range rep.Tables {
		if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", t.Name, err)
		}
		if err := writeRows(f, t.Name, TableValues(t)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// TableValues renders a ranked table as header + data rows, the exact
// shape both sinks write.
func TableValues(t report.Table) [][]interface{} {
	rows := make([][]interface{}, 0, len(t.Rows)+1)

	header := make([]interface{}, 0, 4)
	for _, h := range t.Header() {
		header = append(header, h)
	}
	rows = append(rows, header)

	for _, r := range t.Rows {
		rows = append(rows, []interface{}{r.Rank, r.Group, r.Team, r.Value})
	}
	return rows
}

// MetaValues renders the run metadata as a one-record table.
func MetaValues(meta report.Meta) [][]interface{} {
	return [][]interface{}{
		{"generated_at_et", "season", "season_type", "last_n_games_per_team", "note"},
		{meta.GeneratedAt.Format("2006-01-02T15:04:05-07:00"), meta.Season, meta.SeasonType, meta.LastN, meta.Note},
	}
}
