package sink

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fortuna/apollo/internal/report"
)

func testReport() *report.Report {
	return &report.Report{
		Meta: report.Meta{
			GeneratedAt: time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC),
			Season:      "2024-25",
			SeasonType:  "Regular Season",
			LastN:       10,
			Note:        "test",
		},
		Tables: []report.Table{
			{
				Name:       "G_PTS",
				StatColumn: "PTS_ALLOWED",
				Rows: []report.RankedRow{
					{Rank: 1, Group: report.GroupMost, Team: "BOS", Value: 48.5},
					{Rank: 1, Group: report.GroupLeast, Team: "OKC", Value: 31.2},
				},
			},
			{Name: "C_REB", StatColumn: "REB_ALLOWED"},
		},
	}
}

func TestWorkbookPath_EncodesRunParameters(t *testing.T) {
	path := WorkbookPath("output", testReport().Meta)

	name := filepath.Base(path)
	for _, want := range []string{"last10", "2024-25", "2025-01-06", "allowed_by_position"} {
		if !strings.Contains(name, want) {
			t.Errorf("filename %q missing %q", name, want)
		}
	}
}

func TestWriteWorkbook_RoundTrip(t *testing.T) {
	rep := testReport()
	path := filepath.Join(t.TempDir(), "out", "report.xlsx")

	if err := WriteWorkbook(path, rep); err != nil {
		t.Fatalf("WriteWorkbook error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"README", "G_PTS", "C_REB"} {
		found := false
		for _, s := range sheets {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("sheet %s missing (have %v)", want, sheets)
		}
	}

	// Header row of a ranked table.
	if got, _ := f.GetCellValue("G_PTS", "D1"); got != "PTS_ALLOWED" {
		t.Errorf("G_PTS D1 = %q, want PTS_ALLOWED", got)
	}
	// First data row.
	if got, _ := f.GetCellValue("G_PTS", "C2"); got != "BOS" {
		t.Errorf("G_PTS C2 = %q, want BOS", got)
	}
	if got, _ := f.GetCellValue("G_PTS", "B2"); got != report.GroupMost {
		t.Errorf("G_PTS B2 = %q, want %q", got, report.GroupMost)
	}

	// README carries the run parameters.
	if got, _ := f.GetCellValue("README", "B2"); got != "2024-25" {
		t.Errorf("README B2 = %q, want season", got)
	}
}

func TestWriteWorkbook_EmptyTableStillGetsSheet(t *testing.T) {
	rep := testReport()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := WriteWorkbook(path, rep); err != nil {
		t.Fatalf("WriteWorkbook error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	// C_REB has no rows but its sheet and header must exist.
	if got, _ := f.GetCellValue("C_REB", "A1"); got != "RANK" {
		t.Errorf("C_REB A1 = %q, want RANK", got)
	}
}

func TestTableValues_Shape(t *testing.T) {
	values := TableValues(testReport().Tables[0])

	if len(values) != 3 {
		t.Fatalf("values = %d rows, want header + 2", len(values))
	}
	if values[0][0] != "RANK" || values[0][3] != "PTS_ALLOWED" {
		t.Errorf("header = %v", values[0])
	}
	if values[1][2] != "BOS" {
		t.Errorf("row 1 = %v", values[1])
	}
}
