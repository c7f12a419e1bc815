package cli

import (
	"fmt"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
	"github.com/spf13/cobra"
)

var (
	flagYear     int
	flagMonth    int
	flagDate     string
	flagPrevious bool
	flagSort     string
)

// gregorianYear accepts either a Gregorian or a Buddhist year
func gregorianYear(year int) int {
	if year >= 2400 {
		return year - thaitime.BuddhistEraOffset
	}
	return year
}

func newDatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List draw dates",
		Args:  cobra.NoArgs,
		RunE:  runDates,
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Only list draws of this year (Gregorian, or Buddhist if >= 2400)")
	cmd.Flags().StringVar(&flagSort, "sort", "asc", "Sort order: asc or desc")

	return cmd
}

func runDates(cmd *cobra.Command, args []string) error {
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}

	sc := newScraper()

	var dates []thaitime.OffsetTime
	if flagYear != 0 {
		dates, err = sc.DrawDatesByYear(cmd.Context(), gregorianYear(flagYear))
	} else {
		dates, err = sc.DrawDates(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("fetching draw dates: %w", err)
	}

	draws := make([]*lotto.Draw, 0, len(dates))
	for _, d := range dates {
		draws = append(draws, lotto.NewDraw(d))
	}
	sortRows(draws, order)

	result := &DatesOutput{Draws: draws, Count: len(draws)}
	if flagYear != 0 {
		result.Year = gregorianYear(flagYear)
	}
	return WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose)
}

func newResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Show the result of one draw (default: the current draw)",
		Args:  cobra.NoArgs,
		RunE:  runResult,
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "Draw date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flagPrevious, "previous", false, "Show the draw before the current one")

	return cmd
}

func runResult(cmd *cobra.Command, args []string) error {
	if flagDate != "" && flagPrevious {
		return fmt.Errorf("--date and --previous cannot be used together")
	}

	ctx := cmd.Context()
	sc := newScraper()

	var date thaitime.OffsetTime
	var err error
	switch {
	case flagDate != "":
		if !thaitime.Thai.IsValidDate(flagDate) {
			return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", flagDate)
		}
		date = thaitime.Thai.MustParse(flagDate)
	case flagPrevious:
		date, err = sc.PreviousDrawDate(ctx)
	default:
		date, err = sc.CurrentDrawDate(ctx)
	}
	if err != nil {
		return fmt.Errorf("finding draw date: %w", err)
	}

	r, err := sc.Result(ctx, date)
	if err != nil {
		return fmt.Errorf("fetching result: %w", err)
	}

	result := &ResultsOutput{Results: []*lotto.Result{r}, Count: 1}
	return WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose)
}

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the results of a year or month",
		Args:  cobra.NoArgs,
		RunE:  runResults,
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "Year (Gregorian, or Buddhist if >= 2400) (required)")
	cmd.Flags().IntVar(&flagMonth, "month", 0, "Month 1-12")
	cmd.Flags().StringVar(&flagSort, "sort", "asc", "Sort order: asc or desc")

	cmd.MarkFlagRequired("year")

	return cmd
}

func runResults(cmd *cobra.Command, args []string) error {
	order, err := parseSortOrder(flagSort)
	if err != nil {
		return err
	}
	if flagMonth < 0 || flagMonth > 12 {
		return fmt.Errorf("invalid month: %d (must be 1-12)", flagMonth)
	}

	sc := newScraper()
	year := gregorianYear(flagYear)

	var results []*lotto.Result
	if flagMonth != 0 {
		results, err = sc.ResultsByMonth(cmd.Context(), flagMonth, year)
	} else {
		results, err = sc.ResultsByYear(cmd.Context(), year)
	}
	if err != nil {
		return fmt.Errorf("fetching results: %w", err)
	}
	sortRows(results, order)

	result := &ResultsOutput{Results: results, Count: len(results)}
	return WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose)
}
