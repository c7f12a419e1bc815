package cli

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagDatesOnly   bool
	flagIncremental bool
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Scrape every draw and export dates and results",
		Long: `Scrape every listed draw date and its result, then write CSV and JSON files
under <data-dir>/date and <data-dir>/result, one pair for all draws, one per
Gregorian year and one per Buddhist year.`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().BoolVar(&flagDatesOnly, "dates-only", false, "Export draw dates without fetching results")
	cmd.Flags().BoolVar(&flagIncremental, "incremental", false, "Only fetch results missing from the previous export")

	return cmd
}

// runExport is the main export logic
func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	start := time.Now()
	logger.ResetMetrics()

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := newScraper()

	logger.Info("Listing draw dates", logger.Fields{"base_url": cfg.BaseURL})
	dates, err := sc.DrawDates(ctx)
	if err != nil {
		return fmt.Errorf("fetching draw dates: %w", err)
	}

	draws := make([]*lotto.Draw, 0, len(dates))
	for _, d := range dates {
		draws = append(draws, lotto.NewDraw(d))
	}
	lotto.SortByDate(draws)

	dateKeys, err := store.WriteDates(draws)
	if err != nil {
		return fmt.Errorf("saving draw dates: %w", err)
	}
	logger.Info("Exported draw dates", logger.Fields{"count": len(draws), "partitions": len(dateKeys)})

	result := &ExportOutput{
		ExportedAt:     start.UTC(),
		DataDir:        store.DataDir(),
		DrawCount:      len(draws),
		DatePartitions: dateKeys,
	}

	if !flagDatesOnly {
		var existing []*lotto.Result
		toFetch := dates
		if flagIncremental {
			existing, err = store.LoadResults()
			if err != nil {
				return fmt.Errorf("loading previous results: %w", err)
			}
			toFetch = lotto.MissingDates(dates, existing)
			logger.Info("Incremental export", logger.Fields{
				"known":   len(existing),
				"missing": len(toFetch),
			})
		}

		// Draws without a result page are left out so a later --incremental run retries them
		fresh, missing, err := sc.AvailableResults(ctx, toFetch)
		if err != nil {
			return fmt.Errorf("fetching results: %w", err)
		}
		for _, d := range missing {
			result.MissingDates = append(result.MissingDates, d.Date10())
		}

		results := lotto.MergeResults(existing, fresh)
		resultKeys, err := store.WriteResults(results)
		if err != nil {
			return fmt.Errorf("saving results: %w", err)
		}

		result.ResultCount = len(results)
		result.FetchedCount = len(fresh)
		result.ResultPartitions = resultKeys
	}

	result.Duration = time.Since(start).Round(time.Millisecond).String()
	logger.Info("Export complete", logger.MetricsSnapshot().Fields())

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
