// Package cli implements the command-line interface for thai-lotto.
//
// The cli package provides the Cobra-based CLI: exporting every draw to partitioned
// CSV/JSON files, querying draw dates and results, and rendering or validating
// civil date strings with the Thai calendar format engine. It coordinates the
// config, scraper, storage and lotto packages and writes text or JSON output.
package cli
