package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// DefaultExportBaseURL is the prefix of the public spreadsheet export.
const DefaultExportBaseURL = "https://docs.google.com/spreadsheets/d/"

// ErrNoSheetTitles is returned when a public export has no tabs to read.
var ErrNoSheetTitles = errors.New("no sheet titles configured")

// PublicExport reads tabs of a link-shared spreadsheet through its CSV
// export. The export cannot list tabs, so titles are supplied up front.
type PublicExport struct {
	spreadsheetID string
	titles        []string
	baseURL       string
	client        *http.Client
}

var _ Source = (*PublicExport)(nil)

// PublicExportOption configures a PublicExport.
type PublicExportOption func(p *PublicExport)

// WithBaseURL overrides DefaultExportBaseURL.
func WithBaseURL(baseURL string) PublicExportOption {
	return func(p *PublicExport) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		p.baseURL = baseURL
	}
}

// WithHTTPClient sets the client used for export requests.
func WithHTTPClient(client *http.Client) PublicExportOption {
	return func(p *PublicExport) {
		p.client = client
	}
}

// NewPublicExport creates a CSV export reader for the given tab titles.
func NewPublicExport(spreadsheetID string, titles []string, opts ...PublicExportOption) *PublicExport {
	p := &PublicExport{
		spreadsheetID: spreadsheetID,
		titles:        append([]string(nil), titles...),
		baseURL:       DefaultExportBaseURL,
		client:        http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SheetTitles returns the configured titles.
func (p *PublicExport) SheetTitles(ctx context.Context) ([]string, error) {
	if len(p.titles) == 0 {
		return nil, ErrNoSheetTitles
	}
	return append([]string(nil), p.titles...), nil
}

// ReadRange downloads one tab as CSV and returns its rows.
func (p *PublicExport) ReadRange(ctx context.Context, title, columns string) ([][]string, error) {
	query := url.Values{}
	query.Set("tqx", "out:csv")
	query.Set("sheet", title)
	query.Set("range", columns)
	endpoint := p.baseURL + url.PathEscape(p.spreadsheetID) + "/gviz/tq?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "build export request for %q", title)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "export sheet %q", title)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export sheet %q: unexpected status %s", title, resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse export of sheet %q", title)
	}
	return rows, nil
}
