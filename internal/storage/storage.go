package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/lotto"
)

const (
	DatesDir   = "date"
	ResultsDir = "result"
)

// Storage handles the export directory
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// DataDir returns the root export directory
func (s *Storage) DataDir() string {
	return s.dataDir
}

// partitionPath returns e.g. <data-dir>/result/2568.csv
func (s *Storage) partitionPath(kind, key, ext string) string {
	return filepath.Join(s.dataDir, kind, key+ext)
}

// WriteDates exports draw dates and returns the written partition keys
func (s *Storage) WriteDates(draws []*lotto.Draw) ([]string, error) {
	return writePartitions(s, DatesDir, draws, []string{"date"}, func(d *lotto.Draw) ([]string, error) {
		return []string{d.Date}, nil
	})
}

// WriteResults exports results and returns the written partition keys
func (s *Storage) WriteResults(results []*lotto.Result) ([]string, error) {
	return writePartitions(s, ResultsDir, results, (&lotto.Result{}).Columns(), resultRecord)
}

// LoadResults reads the "all" results partition. A missing file yields no results.
func (s *Storage) LoadResults() ([]*lotto.Result, error) {
	var results []*lotto.Result
	if err := s.loadJSON(ResultsDir, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// LoadDraws reads the "all" dates partition. A missing file yields no draws.
func (s *Storage) LoadDraws() ([]*lotto.Draw, error) {
	var draws []*lotto.Draw
	if err := s.loadJSON(DatesDir, &draws); err != nil {
		return nil, err
	}
	return draws, nil
}

func (s *Storage) loadJSON(kind string, v interface{}) error {
	path := s.partitionPath(kind, lotto.AllPartition, ".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// writePartitions writes one CSV and one JSON file per partition of rows
func writePartitions[T lotto.Row](s *Storage, kind string, rows []T, header []string, record func(T) ([]string, error)) ([]string, error) {
	parts, err := lotto.Partition(rows)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Join(s.dataDir, kind), 0755); err != nil {
		return nil, fmt.Errorf("creating %s directory: %w", kind, err)
	}

	keys := lotto.SortedKeys(parts)
	for _, key := range keys {
		part := parts[key]

		records := make([][]string, 0, len(part))
		for _, row := range part {
			rec, err := record(row)
			if err != nil {
				return nil, fmt.Errorf("encoding %s row %s: %w", kind, row.DrawDate(), err)
			}
			records = append(records, rec)
		}

		if err := writeCSV(s.partitionPath(kind, key, ".csv"), header, records); err != nil {
			return nil, err
		}
		if err := writeJSON(s.partitionPath(kind, key, ".json"), part); err != nil {
			return nil, err
		}

		logger.Debug("Exported partition", logger.Fields{
			"kind": kind,
			"key":  key,
			"rows": len(part),
		})
	}
	logger.AddCounter("storage.partitions", int64(len(keys)))
	return keys, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
