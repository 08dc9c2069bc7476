// Package sheetsync synchronizes the resources listing of a spreadsheet
// into a site data file.
package sheetsync

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
)

// Environment variables read by LoadConfig. The second name of each pair
// is a fallback kept for existing scheduled jobs.
const (
	EnvSpreadsheetID         = "SHEETSYNC_SPREADSHEET_ID"
	EnvSpreadsheetIDFallback = "SHEET_ID"
	EnvAPIKey                = "SHEETSYNC_API_KEY"
	EnvAPIKeyFallback        = "GOOGLE_API_KEY"
	EnvOutput                = "SHEETSYNC_OUTPUT"
	EnvLayout                = "SHEETSYNC_LAYOUT"
	EnvFormat                = "SHEETSYNC_FORMAT"
	EnvCleanURLs             = "SHEETSYNC_CLEAN_URLS"
	EnvLogFormat             = "SHEETSYNC_LOG_FORMAT"
	EnvDebug                 = "SHEETSYNC_DEBUG"
)

// Config holds everything a run needs. It is built once at process start.
type Config struct {
	// SpreadsheetID identifies the source spreadsheet.
	SpreadsheetID string
	// APIKey authenticates Sheets API requests.
	APIKey string
	// OutputPath is the data file to overwrite.
	OutputPath string
	// Output configures the serialization of the data file.
	Output output.Options
	// CleanURLs completes URLs without a scheme.
	CleanURLs bool
	// LogFormat is "text" or "json".
	LogFormat string
	// Debug enables debug logging.
	Debug bool
	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		OutputPath: output.DefaultPath,
		Output: output.Options{
			Layout: output.LayoutFlat,
			Format: output.FormatYAML,
		},
		LogFormat: "text",
		Now:       time.Now,
	}
}

// LoadConfig builds a Config from environment lookups.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	cfg.SpreadsheetID = firstSet(getenv, EnvSpreadsheetID, EnvSpreadsheetIDFallback)
	cfg.APIKey = firstSet(getenv, EnvAPIKey, EnvAPIKeyFallback)
	if path := strings.TrimSpace(getenv(EnvOutput)); path != "" {
		cfg.OutputPath = path
	}

	layout, err := output.ParseLayout(strings.TrimSpace(getenv(EnvLayout)))
	if err != nil {
		return cfg, errors.Wrap(err, EnvLayout)
	}
	cfg.Output.Layout = layout

	format, err := output.ParseFormat(strings.TrimSpace(getenv(EnvFormat)))
	if err != nil {
		return cfg, errors.Wrap(err, EnvFormat)
	}
	cfg.Output.Format = format

	cfg.CleanURLs = isTrue(getenv(EnvCleanURLs))
	cfg.Debug = isTrue(getenv(EnvDebug))
	if logFormat := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); logFormat != "" {
		cfg.LogFormat = logFormat
	}

	return cfg, nil
}

// Validate checks that the settings needed by a run are present.
// The API key is only needed when tabs are read through the Sheets API.
func (c Config) Validate(requireAPIKey bool) error {
	if c.SpreadsheetID == "" {
		return ErrMissingSpreadsheetID
	}
	if requireAPIKey && c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.OutputPath == "" {
		return ErrMissingOutputPath
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("invalid log format: %s (must be text or json)", c.LogFormat)
	}
	return nil
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func firstSet(getenv func(string) string, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
