package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `date,value
2016-05-09,1201
2016-05-10,2329
2016-05-11,1716
2016-05-12,10539`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 4 {
		t.Errorf("Expected 4 observations, got %d", series.Len())
	}

	expected := []float64{1201, 2329, 1716, 10539}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	want := time.Date(2016, time.May, 9, 0, 0, 0, 0, time.UTC)
	if !series.Timestamps[0].Equal(want) {
		t.Errorf("Expected first date %v, got %v", want, series.Timestamps[0])
	}
}

func TestLoadCSVSortsByDate(t *testing.T) {
	csvData := `date,value
2017-03-01,30
2016-01-01,10
2016-07-15,20`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if !series.IsSorted() {
		t.Fatalf("Expected series sorted by date, got %v", series.Timestamps)
	}

	expected := []float64{10, 20, 30}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVColumnOrder(t *testing.T) {
	csvData := `"value","date"
"5","2019-12-01"
"6","2019-12-02"`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 2 || series.Values[1] != 6 {
		t.Errorf("Unexpected series: %v", series.Values)
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	series, err := LoadCSVFromReader(strings.NewReader("date,value\n"), nil)
	if err != nil {
		t.Fatalf("Header-only CSV should not fail: %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("Expected empty series, got %d observations", series.Len())
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		missing bool
	}{
		{"bad date", "date,value\n2016-13-45,100\n", false},
		{"bad value", "date,value\n2016-05-09,lots\n", false},
		{"NaN value", "date,value\n2016-05-09,100\n2016-05-10,NaN\n", false},
		{"infinite value", "date,value\n2016-05-09,Inf\n", false},
		{"negative value", "date,value\n2016-05-09,-5\n", false},
		{"fractional value", "date,value\n2016-05-09,1.5\n", false},
		{"ragged row", "date,value\n2016-05-09,1,2\n", false},
		{"empty input", "", false},
		{"no date column", "day,value\n2016-05-09,1\n", true},
		{"no value column", "date,views\n2016-05-09,1\n", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tc.csvData), nil)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tc.missing && !ErrMissingColumn.Is(err) {
				t.Errorf("Expected missing column error, got %v", err)
			}
			if !tc.missing && !ErrParse.Is(err) {
				t.Errorf("Expected parse error, got %v", err)
			}
		})
	}
}

func TestLoadCSVValueLine(t *testing.T) {
	csvData := "date,value\n2016-05-09,100\n2016-05-10,NaN\n"

	_, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if !ErrParse.Is(err) {
		t.Fatalf("Expected parse error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected line number in %q", err.Error())
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), nil)
	if !ErrParse.Is(err) {
		t.Fatalf("Expected parse error for missing file, got %v", err)
	}
}

func TestLoadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.csv")
	data := "date;views\n2018-01-02;7\n2018-01-01;3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultCSVOptions()
	opts.ValueColumn = "views"
	opts.Delimiter = ';'

	series, err := LoadCSV(path, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Values[0] != 3 || series.Values[1] != 7 {
		t.Errorf("Expected [3 7], got %v", series.Values)
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.DateColumn != "date" {
		t.Errorf("Expected default date column 'date', got '%s'", opts.DateColumn)
	}
	if opts.ValueColumn != "value" {
		t.Errorf("Expected default value column 'value', got '%s'", opts.ValueColumn)
	}
	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}
	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
