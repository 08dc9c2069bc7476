package sheetsync

import (
	"errors"
	"testing"

	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(envMap(nil))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.OutputPath != output.DefaultPath {
		t.Errorf("Expected default output path, got %q", cfg.OutputPath)
	}
	if cfg.Output.Layout != output.LayoutFlat || cfg.Output.Format != output.FormatYAML {
		t.Errorf("Unexpected output options %+v", cfg.Output)
	}
	if cfg.LogFormat != "text" || cfg.Debug || cfg.CleanURLs {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	cfg, err := LoadConfig(envMap(map[string]string{
		EnvSpreadsheetID: " sheet-123 ",
		EnvAPIKey:        "key",
		EnvOutput:        "site/_data/links.yml",
		EnvLayout:        "grouped",
		EnvFormat:        "json",
		EnvCleanURLs:     "true",
		EnvLogFormat:     "JSON",
		EnvDebug:         "1",
	}))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.SpreadsheetID != "sheet-123" || cfg.APIKey != "key" {
		t.Errorf("Unexpected credentials %q %q", cfg.SpreadsheetID, cfg.APIKey)
	}
	if cfg.OutputPath != "site/_data/links.yml" {
		t.Errorf("Unexpected output path %q", cfg.OutputPath)
	}
	if cfg.Output.Layout != output.LayoutGrouped || cfg.Output.Format != output.FormatJSON {
		t.Errorf("Unexpected output options %+v", cfg.Output)
	}
	if !cfg.CleanURLs || !cfg.Debug || cfg.LogFormat != "json" {
		t.Errorf("Unexpected flags %+v", cfg)
	}
}

func TestLoadConfigFallbackNames(t *testing.T) {
	cfg, err := LoadConfig(envMap(map[string]string{
		EnvSpreadsheetIDFallback: "legacy-sheet",
		EnvAPIKeyFallback:        "legacy-key",
	}))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SpreadsheetID != "legacy-sheet" || cfg.APIKey != "legacy-key" {
		t.Errorf("Fallback variables not used: %+v", cfg)
	}

	cfg, _ = LoadConfig(envMap(map[string]string{
		EnvSpreadsheetID:         "primary",
		EnvSpreadsheetIDFallback: "legacy-sheet",
	}))
	if cfg.SpreadsheetID != "primary" {
		t.Errorf("Primary variable should win, got %q", cfg.SpreadsheetID)
	}
}

func TestLoadConfigInvalidLayout(t *testing.T) {
	if _, err := LoadConfig(envMap(map[string]string{EnvLayout: "nested"})); err == nil {
		t.Error("Expected error for invalid layout")
	}
	if _, err := LoadConfig(envMap(map[string]string{EnvFormat: "toml"})); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.SpreadsheetID = "sheet-123"
	valid.APIKey = "key"

	tests := []struct {
		name          string
		mutate        func(c *Config)
		requireAPIKey bool
		expected      error
	}{
		{"valid", func(c *Config) {}, true, nil},
		{"missing id", func(c *Config) { c.SpreadsheetID = "" }, true, ErrMissingSpreadsheetID},
		{"missing key", func(c *Config) { c.APIKey = "" }, true, ErrMissingAPIKey},
		{"key not needed", func(c *Config) { c.APIKey = "" }, false, nil},
		{"missing output", func(c *Config) { c.OutputPath = "" }, true, ErrMissingOutputPath},
	}

	for _, tt := range tests {
		cfg := valid
		tt.mutate(&cfg)
		err := cfg.Validate(tt.requireAPIKey)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: Validate() = %v, expected %v", tt.name, err, tt.expected)
		}
	}

	bad := valid
	bad.LogFormat = "xml"
	if err := bad.Validate(true); err == nil {
		t.Error("Expected error for invalid log format")
	}
}
