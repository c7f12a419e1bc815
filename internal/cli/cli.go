package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pfrederiksen/thai-lotto/internal/config"
	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitInvalid = 2
)

// errInvalid is returned by commands whose check failed after output was written
var errInvalid = errors.New("validation failed")

var (
	flagConfig  string
	flagDataDir string
	flagFormat  string
	flagVerbose bool

	cfg    *config.Config
	format OutputFormat
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thai-lotto",
		Short: "Scrape and export Thai government lottery results",
		Long: `A CLI tool to scrape Thai government lottery results from myhora.com.
Exports every draw as CSV and JSON partitioned by Gregorian and Buddhist year,
and formats or validates dates with the Thai calendar.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Define flags
	cmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Config file path")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Export directory (overrides config data_dir)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newExportCmd(),
		newDatesCmd(),
		newResultCmd(),
		newResultsCmd(),
		newFormatCmd(),
		newValidateCmd(),
		newCalendarCmd(),
		newConfigCmd(),
	)

	return cmd
}

// setup loads the config, applies flag overrides and configures logging
func setup(cmd *cobra.Command, args []string) error {
	// Validate format
	format = OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		loaded.DataDir = flagDataDir
	}
	if flagVerbose {
		loaded.LogLevel = "debug"
	}

	level, err := logger.ParseLevel(loaded.LogLevel)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	cfg = loaded
	logger.Debug("Loaded config", logger.Fields{
		"config":   flagConfig,
		"data_dir": cfg.DataDir,
		"base_url": cfg.BaseURL,
	})
	return nil
}

// newScraper builds a scraper from the loaded config
func newScraper() *scraper.Scraper {
	return scraper.New(
		scraper.WithBaseURL(cfg.BaseURL),
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithTimeout(cfg.Timeout()),
		scraper.WithRetry(uint64(cfg.MaxRetries), cfg.RetryDelay()),
		scraper.WithDelay(cfg.RequestDelay()),
	)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
		os.Exit(ExitSuccess)
	case errors.Is(err, errInvalid):
		os.Exit(ExitInvalid)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
