package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
)

// Delimiter separates CSV fields
const Delimiter = '|'

// resultRecord flattens a result into CSV cells, encoding list fields as JSON arrays
func resultRecord(r *lotto.Result) ([]string, error) {
	lists := r.Lists()
	columns := r.Columns()

	rec := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case "date":
			rec[i] = r.Date
		case "firstPrize":
			rec[i] = r.FirstPrize
		default:
			data, err := json.Marshal(lists[col])
			if err != nil {
				return nil, err
			}
			rec[i] = string(data)
		}
	}
	return rec, nil
}

// writeCSV writes CRLF-separated rows with no line break after the last row
func writeCSV(path string, header []string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = Delimiter
	w.UseCRLF = true
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\r\n"))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
