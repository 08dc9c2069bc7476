package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsAPI reads a spreadsheet through the Google Sheets API v4.
type SheetsAPI struct {
	spreadsheetID string
	service       *sheets.Service
}

var _ Source = (*SheetsAPI)(nil)

// NewSheetsAPI creates a Sheets API reader authenticated with an API key.
// Additional client options are applied after the key.
func NewSheetsAPI(ctx context.Context, spreadsheetID, apiKey string, opts ...option.ClientOption) (*SheetsAPI, error) {
	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "create sheets service")
	}
	return &SheetsAPI{
		spreadsheetID: spreadsheetID,
		service:       service,
	}, nil
}

// SheetTitles performs the spreadsheet metadata call and returns the tab titles.
func (s *SheetsAPI) SheetTitles(ctx context.Context) ([]string, error) {
	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "get spreadsheet %s", s.spreadsheetID)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		titles = append(titles, sheet.Properties.Title)
	}
	return titles, nil
}

// ReadRange reads the formatted values of one tab's column span.
func (s *SheetsAPI) ReadRange(ctx context.Context, title, columns string) ([][]string, error) {
	rng := A1Range(title, columns)
	values, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "read range %s", rng)
	}

	rows := make([][]string, 0, len(values.Values))
	for _, raw := range values.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = formatValue(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// formatValue renders a cell value returned by the API as a string.
func formatValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// IsCredentialError reports whether err is the API rejecting the request
// credential.
func IsCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		// An invalid key is reported as 400 with reason keyInvalid.
		for _, item := range apiErr.Errors {
			if item.Reason == "keyInvalid" {
				return true
			}
		}
	}
	return false
}
