package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"adexdump/internal/config"
	"adexdump/internal/logging"
	"adexdump/internal/render"
	"adexdump/internal/report"
	"adexdump/internal/snapshot"
)

// clock is replaced in tests.
var clock report.Clock = report.SystemClock{}

// validateFlags checks flag values before any file is touched.
func validateFlags(cmd *cobra.Command, opts *options) error {
	flags := cmd.Flags()

	if flags.Changed(flagFormat) {
		if _, err := render.ParseFormat(opts.format); err != nil {
			return err
		}
	}
	if flags.Changed(flagMaxPasswordAge) && opts.maxPasswordAge < 0 {
		return fmt.Errorf("--%s must not be negative (got %d)", flagMaxPasswordAge, opts.maxPasswordAge)
	}
	if flags.Changed(flagOutfile) && opts.outfile == "" {
		return fmt.Errorf("--%s must not be empty (use - for stdout)", flagOutfile)
	}
	return nil
}

// resolveConfig layers explicitly set flags over the config file and
// environment.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		if _, err := os.Stat(opts.configPath); err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagMaxPasswordAge) {
		cfg.Report.MaxPasswordAge = opts.maxPasswordAge
	}
	if flags.Changed(flagOutfile) {
		cfg.Report.Outfile = opts.outfile
	}
	if flags.Changed(flagFormat) {
		cfg.Report.Format = opts.format
	}
	if flags.Changed(flagUTC) {
		cfg.Report.UTC = opts.utc
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildQuery turns the selected mode into the filter to run.
func buildQuery(opts *options, cfg *config.Config) report.Query {
	if opts.longStandingAccounts {
		loc := time.Local
		if cfg.Report.UTC {
			loc = time.UTC
		}
		return report.PasswordAgeQuery{
			MaxAgeDays: cfg.Report.MaxPasswordAge,
			Clock:      clock,
			Location:   loc,
		}
	}
	return report.DescriptionQuery{Text: opts.descriptionSearch}
}

// runReport executes load -> filter -> render for one snapshot file.
func runReport(cmd *cobra.Command, opts *options, filename string, stdout io.Writer) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	format, err := render.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}
	logger.Get(logging.CategoryBoot).Debug("Configuration resolved",
		zap.String("config", opts.configPath),
		zap.String("format", string(format)),
		zap.String("outfile", cfg.Report.Outfile),
		zap.Int("max_password_age", cfg.Report.MaxPasswordAge),
		zap.Bool("utc", cfg.Report.UTC))

	loadTimer := logger.StartTimer(logging.CategoryLoader, "load snapshot")
	doc, err := snapshot.Load(filename)
	if err != nil {
		return err
	}
	loadTimer.Stop(
		zap.String("path", filename),
		zap.Int("records", doc.Len()),
		zap.String("type", doc.Meta.Type))

	query := buildQuery(opts, cfg)
	fmt.Fprintf(stdout, "%s\n\n", query.Status())
	logger.Get(logging.CategoryFilter).Debug("Running filter", zap.Stringer("kind", query.Kind()))

	rep := query.Run(doc)
	logger.Get(logging.CategoryFilter).Info("Filter complete",
		zap.Int("records", doc.Len()),
		zap.Int("findings", rep.Len()))
	if rep.Empty() {
		fmt.Fprintf(stdout, "[-] No results found\n\n")
	}

	renderTimer := logger.StartTimer(logging.CategoryRender, "render report")
	if err := render.Write(cmd.Context(), cfg.Report.Outfile, stdout, rep, format, render.Options{RunID: runID}); err != nil {
		return err
	}
	renderTimer.Stop(
		zap.String("format", string(format)),
		zap.String("outfile", cfg.Report.Outfile))

	return nil
}
