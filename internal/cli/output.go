package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// textWriter is implemented by every command result
type textWriter interface {
	writeText(w io.Writer, verbose bool) error
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result textWriter, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return result.writeText(w, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// DatesOutput lists draw dates
type DatesOutput struct {
	Year  int           `json:"year,omitempty"`
	Draws []*lotto.Draw `json:"draws"`
	Count int           `json:"count"`
}

func (o *DatesOutput) writeText(w io.Writer, verbose bool) error {
	if o.Count == 0 {
		fmt.Fprintln(w, "No draws found.")
		return nil
	}

	for _, d := range o.Draws {
		date, err := thaitime.Thai.Parse(d.Date)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  %s\n", d.Date, lotto.FormatThaiDate(date))
	}
	fmt.Fprintf(w, "\nTotal: %d draws\n", o.Count)
	return nil
}

// ResultsOutput lists draw results
type ResultsOutput struct {
	Results []*lotto.Result `json:"results"`
	Count   int             `json:"count"`
}

func (o *ResultsOutput) writeText(w io.Writer, verbose bool) error {
	if o.Count == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	for i, r := range o.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		heading := r.Date
		if date, err := thaitime.Thai.Parse(r.Date); err == nil {
			heading = fmt.Sprintf("%s (%s)", r.Date, lotto.FormatThaiDate(date))
		}
		fmt.Fprintln(w, heading)
		fmt.Fprintf(w, "  First prize:        %s\n", r.FirstPrize)
		if len(r.FirstThreeDigits) > 0 {
			fmt.Fprintf(w, "  First three digits: %s\n", strings.Join(r.FirstThreeDigits, " "))
		}
		fmt.Fprintf(w, "  Last three digits:  %s\n", strings.Join(r.LastThreeDigits, " "))
		fmt.Fprintf(w, "  Two digits:         %s\n", strings.Join(r.TwoDigits, " "))
		if verbose {
			fmt.Fprintf(w, "  Near first prize:   %s\n", strings.Join(r.NearFirstPrize, " "))
			fmt.Fprintf(w, "  Second prize:       %s\n", strings.Join(r.SecondPrize, " "))
			fmt.Fprintf(w, "  Third prize:        %s\n", strings.Join(r.ThirdPrize, " "))
			fmt.Fprintf(w, "  Fourth prize:       %d numbers\n", len(r.FourthPrize))
			fmt.Fprintf(w, "  Fifth prize:        %d numbers\n", len(r.FifthPrize))
		}
	}
	if o.Count > 1 {
		fmt.Fprintf(w, "\nTotal: %d draws\n", o.Count)
	}
	return nil
}

// ExportOutput summarizes an export run
type ExportOutput struct {
	ExportedAt       time.Time `json:"exported_at"`
	DataDir          string    `json:"data_dir"`
	DrawCount        int       `json:"draw_count"`
	DatePartitions   []string  `json:"date_partitions"`
	ResultCount      int       `json:"result_count"`
	FetchedCount     int       `json:"fetched_count"`
	ResultPartitions []string  `json:"result_partitions,omitempty"`
	MissingDates     []string  `json:"missing_dates,omitempty"`
	Duration         string    `json:"duration"`
}

func (o *ExportOutput) writeText(w io.Writer, verbose bool) error {
	fmt.Fprintf(w, "Exported %d draw dates (%s)\n", o.DrawCount, strings.Join(o.DatePartitions, ", "))
	if o.ResultPartitions != nil {
		fmt.Fprintf(w, "Exported %d results, %d fetched (%s)\n", o.ResultCount, o.FetchedCount, strings.Join(o.ResultPartitions, ", "))
	}
	if len(o.MissingDates) > 0 {
		fmt.Fprintf(w, "Skipped %d draws without results: %s\n", len(o.MissingDates), strings.Join(o.MissingDates, ", "))
	}
	fmt.Fprintf(w, "Data directory: %s\n", o.DataDir)
	if verbose {
		fmt.Fprintf(w, "Took %s\n", o.Duration)
	}
	return nil
}

// FormatOutput is a rendered civil string
type FormatOutput struct {
	Input       string  `json:"input"`
	Pattern     string  `json:"pattern"`
	Offset      float64 `json:"offset"`
	Formatted   string  `json:"formatted"`
	ISO         string  `json:"iso"`
	EpochMillis int64   `json:"epoch_millis"`
}

func (o *FormatOutput) writeText(w io.Writer, verbose bool) error {
	fmt.Fprintln(w, o.Formatted)
	if verbose {
		fmt.Fprintf(w, "  ISO:    %s\n", o.ISO)
		fmt.Fprintf(w, "  Epoch:  %d\n", o.EpochMillis)
		fmt.Fprintf(w, "  Offset: %+g\n", o.Offset)
	}
	return nil
}

// ValidateOutput reports which shapes a string is valid as
type ValidateOutput struct {
	Input    string  `json:"input"`
	Offset   float64 `json:"offset"`
	Date     bool    `json:"date"`
	Time     bool    `json:"time"`
	DateTime bool    `json:"datetime"`
}

// Valid reports whether the input is valid as any shape
func (o *ValidateOutput) Valid() bool {
	return o.Date || o.Time || o.DateTime
}

func (o *ValidateOutput) writeText(w io.Writer, verbose bool) error {
	fmt.Fprintf(w, "date:     %s\n", validWord(o.Date))
	fmt.Fprintf(w, "time:     %s\n", validWord(o.Time))
	fmt.Fprintf(w, "datetime: %s\n", validWord(o.DateTime))
	return nil
}

func validWord(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
