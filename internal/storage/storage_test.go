package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

func newResult(t *testing.T, date, first string) *lotto.Result {
	t.Helper()
	r := lotto.NewResult(thaitime.Thai.MustParse(date))
	r.FirstPrize = first
	r.NearFirstPrize = []string{"123455", "123457"}
	r.TwoDigits = []string{"42"}
	return r
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Delimiter
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return records
}

func TestNew(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.DataDir() != dir {
		t.Errorf("DataDir() = %q, want %q", s.DataDir(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data directory was not created: %v", err)
	}
}

func TestNew_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New("~/lotto-data")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := filepath.Join(home, "lotto-data")
	if s.DataDir() != want {
		t.Errorf("DataDir() = %q, want %q", s.DataDir(), want)
	}
}

func TestWriteResults(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	results := []*lotto.Result{
		newResult(t, "2024-12-30", "097863"),
		newResult(t, "2025-01-17", "730209"),
	}

	keys, err := s.WriteResults(results)
	if err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	wantKeys := []string{"all", "2024", "2025", "2567", "2568"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("keys = %v, want %v", keys, wantKeys)
	}

	for _, key := range wantKeys {
		for _, ext := range []string{".csv", ".json"} {
			path := filepath.Join(s.DataDir(), ResultsDir, key+ext)
			if _, err := os.Stat(path); err != nil {
				t.Errorf("expected %s to exist: %v", path, err)
			}
		}
	}

	records := readCSV(t, filepath.Join(s.DataDir(), ResultsDir, "all.csv"))
	if len(records) != 3 {
		t.Fatalf("all.csv has %d records, want 3 (header + 2)", len(records))
	}
	if !reflect.DeepEqual(records[0], (&lotto.Result{}).Columns()) {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "2024-12-30" || records[1][1] != "097863" {
		t.Errorf("first row = %v", records[1])
	}

	var near []string
	if err := json.Unmarshal([]byte(records[1][2]), &near); err != nil {
		t.Fatalf("nearFirstPrize cell %q is not a JSON array: %v", records[1][2], err)
	}
	if !reflect.DeepEqual(near, []string{"123455", "123457"}) {
		t.Errorf("nearFirstPrize = %v", near)
	}
	if records[1][3] != "[]" {
		t.Errorf("empty list cell = %q, want []", records[1][3])
	}

	year := readCSV(t, filepath.Join(s.DataDir(), ResultsDir, "2568.csv"))
	if len(year) != 2 || year[1][0] != "2025-01-17" {
		t.Errorf("2568.csv = %v, want only the 2025-01-17 draw", year)
	}
}

func TestWriteResults_DelimiterInFile(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.WriteResults([]*lotto.Result{newResult(t, "2025-01-17", "730209")}); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), ResultsDir, "2025.csv"))
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	header := strings.SplitN(string(data), "\r\n", 2)[0]
	if header != "date|firstPrize|nearFirstPrize|secondPrize|thirdPrize|fourthPrize|fifthPrize|firstThreeDigits|lastThreeDigits|twoDigits" {
		t.Errorf("header line = %q", header)
	}
}

func TestWriteDates(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	draws := []*lotto.Draw{
		lotto.NewDraw(thaitime.Thai.MustParse("2025-01-02")),
		lotto.NewDraw(thaitime.Thai.MustParse("2025-01-17")),
	}
	keys, err := s.WriteDates(draws)
	if err != nil {
		t.Fatalf("WriteDates() error = %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"all", "2025", "2568"}) {
		t.Errorf("keys = %v", keys)
	}

	records := readCSV(t, filepath.Join(s.DataDir(), DatesDir, "2568.csv"))
	want := [][]string{{"date"}, {"2025-01-02"}, {"2025-01-17"}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("2568.csv = %v, want %v", records, want)
	}

	loaded, err := s.LoadDraws()
	if err != nil {
		t.Fatalf("LoadDraws() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, draws) {
		t.Errorf("LoadDraws() = %v, want %v", loaded, draws)
	}
}

func TestWriteDates_CRLFWithoutTrailingNewline(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	draws := []*lotto.Draw{
		lotto.NewDraw(thaitime.Thai.MustParse("2025-01-02")),
		lotto.NewDraw(thaitime.Thai.MustParse("2025-01-17")),
	}
	if _, err := s.WriteDates(draws); err != nil {
		t.Fatalf("WriteDates() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), DatesDir, "all.csv"))
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	want := "date\r\n2025-01-02\r\n2025-01-17"
	if string(data) != want {
		t.Errorf("all.csv = %q, want %q", data, want)
	}
}

func TestWriteDates_Empty(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	keys, err := s.WriteDates(nil)
	if err != nil {
		t.Fatalf("WriteDates() error = %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"all"}) {
		t.Errorf("keys = %v, want [all]", keys)
	}

	data, err := os.ReadFile(filepath.Join(s.DataDir(), DatesDir, "all.json"))
	if err != nil {
		t.Fatalf("failed to read all.json: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("all.json = %q, want []", data)
	}
}

func TestLoadResults(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Missing file
	results, err := s.LoadResults()
	if err != nil {
		t.Fatalf("LoadResults() on empty dir error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("LoadResults() on empty dir = %d results, want 0", len(results))
	}

	written := []*lotto.Result{newResult(t, "2025-01-17", "730209")}
	if _, err := s.WriteResults(written); err != nil {
		t.Fatalf("WriteResults() error = %v", err)
	}

	results, err = s.LoadResults()
	if err != nil {
		t.Fatalf("LoadResults() error = %v", err)
	}
	if !reflect.DeepEqual(results, written) {
		t.Errorf("LoadResults() = %+v, want %+v", results[0], written[0])
	}
}

func TestLoadResults_Corrupt(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dir := filepath.Join(s.DataDir(), ResultsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "all.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.LoadResults(); err == nil {
		t.Error("LoadResults() expected error for corrupt file")
	}
}

func TestWriteResults_InvalidDate(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	bad := &lotto.Result{Date: "not a date"}
	if _, err := s.WriteResults([]*lotto.Result{bad}); err == nil {
		t.Error("WriteResults() expected error for unparseable date")
	}
}
