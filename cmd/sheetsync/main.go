// Package main provides the CLI entry point for sheetsync.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/output"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/source"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type flags struct {
	outputPath string
	layout     string
	format     string
	pretty     bool
	cleanURLs  bool
	xlsxPath   string
	public     bool
	sheetNames []string
	debug      bool
}

func main() {
	if err := newRootCmd(os.Getenv).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "sheetsync",
		Short: "Sync the resources listing from a spreadsheet into the site data directory",
		Long: `sheetsync reads every tab of the resources spreadsheet (columns A to C:
name, url, category) and writes them to a data file for the site generator.

The spreadsheet id and API key are read from SHEETSYNC_SPREADSHEET_ID and
SHEETSYNC_API_KEY.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, getenv, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: "+output.DefaultPath+")")
	rootCmd.Flags().StringVar(&f.layout, "layout", "", "Section layout: flat, grouped (default: flat)")
	rootCmd.Flags().StringVar(&f.format, "format", "", "Output format: yaml, json (default: yaml)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&f.cleanURLs, "clean-urls", false, "Add https:// to URLs without a scheme")
	rootCmd.Flags().StringVar(&f.xlsxPath, "xlsx", "", "Read tabs from a local xlsx export instead of the Sheets API")
	rootCmd.Flags().BoolVar(&f.public, "public", false, "Read tabs through the public CSV export (no API key)")
	rootCmd.Flags().StringArrayVar(&f.sheetNames, "sheet", nil, "Tab to read with --public (repeatable)")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", version)
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, getenv func(string) string, f *flags) error {
	cfg, err := sheetsync.LoadConfig(getenv)
	if err == nil {
		err = applyFlags(cmd, &cfg, f)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg).With("run_id", uuid.NewString())
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = sheetsync.LoggingContext(ctx, logger)

	if f.xlsxPath != "" && f.public {
		err := fmt.Errorf("--xlsx and --public are mutually exclusive")
		logger.Error("invalid arguments", "error", err)
		return err
	}
	if f.xlsxPath != "" && cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = strings.TrimSuffix(filepath.Base(f.xlsxPath), filepath.Ext(f.xlsxPath))
	}
	requireAPIKey := f.xlsxPath == "" && !f.public
	if err := cfg.Validate(requireAPIKey); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	src, closeSource, err := openSource(ctx, cfg, f)
	if err != nil {
		logger.Error("cannot open source", "error", err)
		return err
	}
	defer closeSource()

	report, err := sheetsync.Run(ctx, cfg, src)
	if err != nil {
		logger.Error("sync failed", "error", err)
		return err
	}

	printSummary(cmd.OutOrStdout(), cfg.OutputPath, report)
	return nil
}

// applyFlags overrides environment settings with flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *sheetsync.Config, f *flags) error {
	changed := cmd.Flags().Changed

	if changed("output") {
		cfg.OutputPath = f.outputPath
	}
	if changed("layout") {
		layout, err := output.ParseLayout(f.layout)
		if err != nil {
			return err
		}
		cfg.Output.Layout = layout
	}
	if changed("format") {
		format, err := output.ParseFormat(f.format)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	if changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if changed("clean-urls") {
		cfg.CleanURLs = f.cleanURLs
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	return nil
}

func newLogger(w io.Writer, cfg sheetsync.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func openSource(ctx context.Context, cfg sheetsync.Config, f *flags) (source.Source, func(), error) {
	switch {
	case f.xlsxPath != "":
		wb, err := source.OpenWorkbook(f.xlsxPath)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { wb.Close() }, nil
	case f.public:
		return source.NewPublicExport(cfg.SpreadsheetID, f.sheetNames), func() {}, nil
	default:
		api, err := source.NewSheetsAPI(ctx, cfg.SpreadsheetID, cfg.APIKey)
		if err != nil {
			return nil, nil, err
		}
		return api, func() {}, nil
	}
}

func printSummary(w io.Writer, path string, report *sheetsync.Report) {
	okColor := color.New(color.FgGreen, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)

	okColor.Fprintf(w, "Wrote %s\n", path)
	for _, section := range report.Result.Sections {
		fmt.Fprintf(w, "   - %s: %d entries\n", section.Name, len(section.Entries))
	}
	for _, failed := range report.Failed() {
		warnColor.Fprintf(w, "   ! %s: %v\n", failed.Name, failed.Err)
	}
	fmt.Fprintf(w, "Total sections: %d, total entries: %d\n",
		len(report.Result.Sections), report.Result.Sections.EntryCount())
}
