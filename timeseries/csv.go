package timeseries

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrParse is returned when the CSV source cannot be opened or a row
	// cannot be parsed.
	ErrParse = errors.NewKind("parse %s: %s")

	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.NewKind("parse %s: missing column %q")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: "date")
	ValueColumn string // Column name for values (default: "value")
	DateFormat  string // Date format (default: "2006-01-02")
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		Delimiter:   ',',
	}
}

// LoadCSV loads a date-indexed series from a CSV file. The result is sorted
// ascending by date.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, ErrParse.Wrap(err, filename, err.Error())
	}
	defer file.Close()

	return loadCSV(file, filename, opts)
}

// LoadCSVFromReader loads a date-indexed series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	return loadCSV(r, "<reader>", opts)
}

func loadCSV(r io.Reader, source string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrParse.New(source, "empty file")
	}
	if err != nil {
		return nil, ErrParse.Wrap(err, source, err.Error())
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch h {
		case opts.DateColumn:
			dateIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, ErrMissingColumn.New(source, opts.DateColumn)
	}
	if valueIdx == -1 {
		return nil, ErrMissingColumn.New(source, opts.ValueColumn)
	}

	formats := []string{
		opts.DateFormat,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02",
	}

	var records []Record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrParse.Wrap(err, source, err.Error())
		}
		line, _ := reader.FieldPos(0)

		dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
		ts, ok := parseDate(dateStr, formats)
		if !ok {
			return nil, ErrParse.New(source, "line "+strconv.Itoa(line)+": invalid date "+strconv.Quote(dateStr))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		// Page views are non-negative counts.
		val, err := strconv.ParseInt(valStr, 10, 64)
		if err != nil {
			return nil, ErrParse.Wrap(err, source, "line "+strconv.Itoa(line)+": invalid value "+strconv.Quote(valStr))
		}
		if val < 0 {
			return nil, ErrParse.New(source, "line "+strconv.Itoa(line)+": negative value "+strconv.Quote(valStr))
		}

		records = append(records, Record{Date: ts, Value: float64(val)})
	}

	return FromRecords(records).Sorted(), nil
}

func parseDate(s string, formats []string) (time.Time, bool) {
	for _, layout := range formats {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
