package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/render"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// isolate runs the test in an empty directory with no PAGEVIEWS_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		config.EnvCSVPath, config.EnvOutputDir, config.EnvLogLevel,
		config.EnvLowerQuantile, config.EnvUpperQuantile,
	} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

// writeCSV writes a daily series over two and a half years with a July peak.
func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("date,value\n")
	start := time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 900; i++ {
		d := start.AddDate(0, 0, i)
		v := 40000 + 10*i + (i*7919)%5000
		if d.Month() == time.July {
			v += 30000
		}
		fmt.Fprintf(&b, "%s,%d\n", d.Format("2006-01-02"), v)
	}
	path := filepath.Join(dir, "fcc-forum-pageviews.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"pageviews", "--log-level", "error"}, args...))
	return out.String(), err
}

func TestRunAllCharts(t *testing.T) {
	dir := isolate(t)
	csv := writeCSV(t, dir)
	outDir := filepath.Join(dir, "charts")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := run(t, "--csv", csv, "--out", outDir, "all")
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("all failed: %v", err)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("all did not finish within 60s")
	}

	for _, name := range []string{render.LinePlotFile, render.BarPlotFile, render.BoxPlotFile} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestRunSingleChartDefaultPath(t *testing.T) {
	dir := isolate(t)
	writeCSV(t, dir)

	if _, err := run(t, "line"); err != nil {
		t.Fatalf("line failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.LinePlotFile)); err != nil {
		t.Errorf("Expected line plot in working directory: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.BarPlotFile)); err == nil {
		t.Error("line should not draw the bar plot")
	}
}

func TestRunMissingCSV(t *testing.T) {
	isolate(t)

	_, err := run(t, "--csv", "missing.csv", "box")
	if !timeseries.ErrParse.Is(err) {
		t.Fatalf("Expected parse error, got %v", err)
	}
}

func TestPreview(t *testing.T) {
	dir := isolate(t)
	csv := writeCSV(t, dir)

	out, err := run(t, "--csv", csv, "preview")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if !strings.Contains(out, "Monthly mean page views 2016-05 to 2018-10") {
		t.Errorf("Unexpected preview output:\n%s", out)
	}
}

func TestWritePreviewEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writePreview(&buf, stats.MonthlyMeans(timeseries.FromRecords(nil))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No data available") {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	dir := isolate(t)
	csv := writeCSV(t, dir)

	out, err := run(t, "--csv", csv, "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	for _, want := range []string{"2016", "2017", "2018", "Seasonal peak:   Jul", "Trend change:", "Lag-12 autocorr:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in summary:\n%s", want, out)
		}
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir on toolchains that lack it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
