package sink

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/fortuna/apollo/internal/report"
)

// SheetsUpdater overwrites one tab per report table in a target
// spreadsheet, creating missing tabs first. Updates are idempotent: every
// tab's full contents are replaced on each run.
type SheetsUpdater struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsUpdater authenticates with a service-account JSON payload.
func NewSheetsUpdater(ctx context.Context, serviceJSON []byte, spreadsheetID string) (*SheetsUpdater, error) {
	cfg, err := google.JWTConfigFromJSON(serviceJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &SheetsUpdater{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Update ensures a tab exists for README and every table, then rewrites
// each tab's contents (header row + data rows).
func (u *SheetsUpdater) Update(ctx context.Context, rep *report.Report) error {
	ss, err := u.svc.Spreadsheets.Get(u.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("opening spreadsheet: %w", err)
	}

	existing := make(map[string]bool, len(ss.Sheets))
	for _, s := range ss.Sheets {
		existing[s.Properties.Title] = true
	}

	desired := []string{"README"}
	for _, t := range rep.Tables {
		desired = append(desired, t.Name)
	}

	var requests []*sheets.Request
	for _, title := range desired {
		if existing[title] {
			continue
		}
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    200,
						ColumnCount: 20,
					},
				},
			},
		})
	}

	if len(requests) > 0 {
		_, err := u.svc.Spreadsheets.BatchUpdate(u.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("adding missing tabs: %w", err)
		}
	}

	if err := u.writeTab(ctx, "README", MetaValues(rep.Meta)); err != nil {
		return err
	}
	for _, t := range rep.Tables {
		if err := u.writeTab(ctx, t.Name, TableValues(t)); err != nil {
			return err
		}
	}

	return nil
}

func (u *SheetsUpdater) writeTab(ctx context.Context, tab string, values [][]interface{}) error {
	_, err := u.svc.Spreadsheets.Values.Clear(u.spreadsheetID, tab, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clearing tab %s: %w", tab, err)
	}

	_, err = u.svc.Spreadsheets.Values.Update(u.spreadsheetID, tab+"!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("updating tab %s: %w", tab, err)
	}

	return nil
}
