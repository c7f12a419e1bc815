package cli

import (
	"fmt"

	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
	"github.com/spf13/cobra"
)

var (
	flagPattern string
	flagOffset  float64
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Render a date string with a format pattern",
		Long: `Parse a date or date-time string at the given UTC offset and render it with
a format pattern. Tokens: BBBB BB YYYY YY DOWT dowt DOW dow MMMMT MMMT MMMM MMM
MM M DD D hh nn ss zzz. An empty pattern renders YYYY-MM-DDThh:nn:ss+07:00.`,
		Example: `  thai-lotto format 2025-01-17 --pattern "D MMMMT BBBB"
  thai-lotto format "2025-01-17 08:30" --offset 5.5 --pattern "DOW D MMM YYYY hh:nn"`,
		Args: cobra.ExactArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().StringVar(&flagPattern, "pattern", "", "Format pattern")
	cmd.Flags().Float64Var(&flagOffset, "offset", thaitime.ThaiOffset, "UTC offset in hours")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	t, err := thaitime.NewZone(flagOffset).Parse(args[0])
	if err != nil {
		return err
	}

	result := &FormatOutput{
		Input:       args[0],
		Pattern:     flagPattern,
		Offset:      flagOffset,
		Formatted:   t.Format(flagPattern),
		ISO:         t.ISOString(),
		EpochMillis: t.EpochMillis(),
	}
	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <value>",
		Short: "Check whether a string is a valid date, time or date-time",
		Long: `Check a string against the date (YYYY-MM-DD), time (hh:nn, hh:nn:ss,
hh:nn:ss.zzz) and date-time (YYYY-MM-DD hh:nn:ss) shapes. Exits with status 2
when the string is valid as none of them.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().Float64Var(&flagOffset, "offset", thaitime.ThaiOffset, "UTC offset in hours")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	zone := thaitime.NewZone(flagOffset)
	result := &ValidateOutput{
		Input:    args[0],
		Offset:   flagOffset,
		Date:     zone.IsValidDate(args[0]),
		Time:     zone.IsValidTime(args[0]),
		DateTime: zone.IsValidDateTime(args[0]),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !result.Valid() {
		return errInvalid
	}
	return nil
}
