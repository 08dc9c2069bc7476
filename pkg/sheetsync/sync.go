package sheetsync

import (
	"context"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/parser"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/source"
	"go.opentelemetry.io/otel/codes"
)

// Report describes one run.
type Report struct {
	// Result is the generated artifact.
	Result *models.SyncResult
	// Outcomes holds one entry per tab, in spreadsheet order.
	Outcomes []SheetOutcome
}

// Failed returns the outcomes of tabs that could not be read.
func (r *Report) Failed() []SheetOutcome {
	var failed []SheetOutcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Sync fetches every tab of the spreadsheet and normalizes the rows into a
// SyncResult. Nothing is written.
func Sync(ctx context.Context, cfg Config, src source.Source) (*Report, error) {
	outcomes, err := FetchSheets(ctx, cfg.SpreadsheetID, src)
	if err != nil {
		return nil, err
	}

	return &Report{
		Result: &models.SyncResult{
			LastUpdated:   cfg.now().UTC(),
			SpreadsheetID: cfg.SpreadsheetID,
			Sections:      Normalize(ctx, outcomes, parser.Options{CleanURLs: cfg.CleanURLs}),
		},
		Outcomes: outcomes,
	}, nil
}

// Normalize converts fetched tabs into sections. Skipped tabs and tabs
// without any entry produce no section.
func Normalize(ctx context.Context, outcomes []SheetOutcome, opts parser.Options) models.Sections {
	log := logger(ctx)

	var sections models.Sections
	for _, o := range outcomes {
		if o.Skipped() {
			continue
		}
		entries := parser.NormalizeRows(o.Rows, opts)
		if len(entries) == 0 {
			log.Info("no entries found, omitting sheet", "sheet", o.Name)
			continue
		}
		log.Info("processed sheet", "sheet", o.Name, "entries", len(entries))
		sections = append(sections, models.Section{Name: o.Name, Entries: entries})
	}
	return sections
}

// Run performs Sync and overwrites the data file with the result.
// A fetch or write failure aborts the run; the file is left untouched when
// the spreadsheet cannot be read.
func Run(ctx context.Context, cfg Config, src source.Source) (*Report, error) {
	ctx, span := tracer.Start(ctx, "sheetsync.Run")
	defer span.End()

	log := logger(ctx)
	log.Info("starting sync", "spreadsheet_id", cfg.SpreadsheetID)

	report, err := Sync(ctx, cfg, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}

	if err := output.WriteFile(cfg.OutputPath, report.Result, cfg.Output); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return nil, err
	}

	log.Info("wrote data file",
		"path", cfg.OutputPath,
		"sections", len(report.Result.Sections),
		"entries", report.Result.Sections.EntryCount(),
		"failed_sheets", len(report.Failed()),
	)
	return report, nil
}
