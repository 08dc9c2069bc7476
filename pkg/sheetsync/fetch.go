package sheetsync

import (
	"context"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/source"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/ukaji3/sheetsync-go/pkg/sheetsync")

// SheetOutcome is the result of reading one tab.
type SheetOutcome struct {
	models.Sheet
	// Err is set when the tab could not be read.
	Err error
}

// Skipped reports whether the tab contributes nothing to the result.
func (o SheetOutcome) Skipped() bool {
	return o.Err != nil || len(o.Rows) == 0
}

// FetchSheets lists the tabs of the spreadsheet and reads columns A to C
// of each, one at a time in spreadsheet order. Failing to list the tabs
// returns a *FetchError. A tab that cannot be read is recorded in its
// outcome and does not stop the others.
func FetchSheets(ctx context.Context, spreadsheetID string, src source.Source) ([]SheetOutcome, error) {
	log := logger(ctx)

	titles, err := src.SheetTitles(ctx)
	if err != nil {
		return nil, &FetchError{
			SpreadsheetID:      spreadsheetID,
			CredentialRejected: source.IsCredentialError(err),
			Err:                err,
		}
	}
	log.Info("found sheets", "count", len(titles))

	outcomes := make([]SheetOutcome, 0, len(titles))
	for _, title := range titles {
		outcomes = append(outcomes, fetchSheet(ctx, src, title))
	}
	return outcomes, nil
}

func fetchSheet(ctx context.Context, src source.Source, title string) SheetOutcome {
	log := logger(ctx).With("sheet", title)
	ctx, span := tracer.Start(ctx, "sheetsync.ReadRange",
		trace.WithAttributes(attribute.String("sheet", title)))
	defer span.End()

	log.Debug("reading sheet", "range", source.A1Range(title, source.ColumnRange))
	rows, err := src.ReadRange(ctx, title, source.ColumnRange)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		log.Warn("skipping sheet", "error", err)
		return SheetOutcome{
			Sheet: models.Sheet{Name: title},
			Err:   &SheetError{SheetName: title, Err: err},
		}
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	if len(rows) == 0 {
		log.Info("no rows found, skipping sheet")
	}
	return SheetOutcome{Sheet: models.Sheet{Name: title, Rows: rows}}
}
