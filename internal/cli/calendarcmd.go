package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pfrederiksen/thai-lotto/internal/calendar"
	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/storage"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
	"github.com/spf13/cobra"
)

var flagOutput string

func newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Write exported draws as an iCalendar feed",
		Long: `Build an .ics calendar from a previous export in the data directory. Draws
with a result carry the headline prizes, draws without one are tentative.
Nothing is fetched from the network.`,
		Args: cobra.NoArgs,
		RunE: runCalendar,
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Only include draws of this year (Gregorian, or Buddhist if >= 2400)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Write to this file instead of stdout")

	return cmd
}

func runCalendar(cmd *cobra.Command, args []string) error {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	results, err := store.LoadResults()
	if err != nil {
		return fmt.Errorf("loading results: %w", err)
	}
	draws, err := store.LoadDraws()
	if err != nil {
		return fmt.Errorf("loading draw dates: %w", err)
	}

	// Draws without a result yet become empty placeholders
	placeholders := make([]*lotto.Result, 0, len(draws))
	for _, d := range draws {
		date, err := thaitime.Thai.Parse(d.Date)
		if err != nil {
			return fmt.Errorf("loading draw dates: %w", err)
		}
		placeholders = append(placeholders, lotto.NewResult(date))
	}
	all := lotto.MergeResults(placeholders, results)

	name := "Thai lottery draws"
	if flagYear != 0 {
		year := gregorianYear(flagYear)
		prefix := strconv.Itoa(year) + "-"
		filtered := make([]*lotto.Result, 0)
		for _, r := range all {
			if strings.HasPrefix(r.Date, prefix) {
				filtered = append(filtered, r)
			}
		}
		all = filtered
		name = fmt.Sprintf("%s %d", name, year+thaitime.BuddhistEraOffset)
	}

	if len(all) == 0 {
		return fmt.Errorf("no exported draws in %s (run 'thai-lotto export' first)", store.DataDir())
	}

	ics, err := calendar.GenerateICS(all, name)
	if err != nil {
		return fmt.Errorf("generating calendar: %w", err)
	}

	if flagOutput == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), ics)
		return err
	}
	if err := os.WriteFile(flagOutput, []byte(ics), 0644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	logger.Info("Wrote calendar", logger.Fields{"path": flagOutput, "draws": len(all)})
	return nil
}
