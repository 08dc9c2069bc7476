package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
)

// DefaultPath is where the site generator expects the resources data.
const DefaultPath = "_data/resources.yml"

// Format is the serialization format of the data file.
type Format string

const (
	// FormatYAML writes YAML with a generated-file header.
	FormatYAML Format = "yaml"
	// FormatJSON writes JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. An empty name selects FormatYAML.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be yaml or json)", s)
	}
}

// Options configures how a result is written.
type Options struct {
	// Layout selects flat or grouped sections.
	Layout Layout
	// Format selects YAML or JSON.
	Format Format
	// Pretty indents JSON output. YAML is always indented.
	Pretty bool
}

// WriteError reports a failure to persist the data file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Encode serializes result according to opts.
func Encode(result *models.SyncResult, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatJSON:
		return ToJSON(result, opts.Layout, opts.Pretty)
	default:
		return ToYAML(result, opts.Layout)
	}
}

// WriteFile serializes result and overwrites the file at path, creating
// the parent directory when needed. The write is not atomic.
func WriteFile(path string, result *models.SyncResult, opts Options) error {
	data, err := Encode(result, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
