package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qbtime/config"
)

func defaultConfig() config.Config {
	return config.Config{
		Report: config.ReportConfig{WorkdayHours: 8, OutputSuffix: "_out"},
		Export: config.ExportConfig{Format: "csv"},
		Chart:  config.ChartConfig{WidthInches: 8, HeightInches: 5},
	}
}

func writeReport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return path
}

type fakeViewer struct {
	supported bool
	shown     []string
}

func (v *fakeViewer) Supported() bool { return v.supported }

func (v *fakeViewer) Show(path string) error {
	if !v.supported {
		return fmt.Errorf("no image viewer found on this system")
	}
	v.shown = append(v.shown, path)
	return nil
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "proj.csv", strings.Join([]string{
		"a,Total Alpha,c,2020-01-01,,,40",
		"a,Total Beta,c,2020-01-02,,,8",
		"a,Alpha,c,2020-01-01,Jane,Billable,4",
	}, "\n"))

	result, err := Run([]string{input}, defaultConfig(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 1 || result.RowsRead != 3 || result.TotalsFound != 2 || result.SummariesWritten != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	content, err := os.ReadFile(filepath.Join(dir, "proj_out.csv"))
	if err != nil {
		t.Fatalf("read summary output: %v", err)
	}
	expected := "Project,Days\nAlpha,5.0\nBeta,1.0\n"
	if string(content) != expected {
		t.Fatalf("unexpected summary:\nexpected %q\ngot      %q", expected, string(content))
	}
}

func TestRun_DirectorySkipsNonCSV(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "report.csv", "a,Total Alpha,c,2020-01-01,,,8")
	writeReport(t, dir, "notes.txt", "not a report")

	var notices []string
	result, err := Run([]string{dir}, defaultConfig(), Options{
		Notice: func(format string, a ...any) {
			notices = append(notices, fmt.Sprintf(format, a...))
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 1 || result.FilesSkipped != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	found := false
	for _, notice := range notices {
		if strings.Contains(notice, "Ignoring") && strings.Contains(notice, "notes.txt") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an ignore notice for notes.txt, got %v", notices)
	}
}

func TestRun_EmptyFileWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "empty.csv", "")

	result, err := Run([]string{input}, defaultConfig(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalsFound != 0 || result.SummariesWritten != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	content, err := os.ReadFile(filepath.Join(dir, "empty_out.csv"))
	if err != nil {
		t.Fatalf("read summary output: %v", err)
	}
	if string(content) != "Project,Days\n" {
		t.Fatalf("expected header-only summary, got %q", string(content))
	}
}

func TestRun_MalformedDurationAborts(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "bad.csv", "a,Total Alpha,c,2020-01-01,,,eight")

	_, err := Run([]string{input}, defaultConfig(), Options{})
	if err == nil {
		t.Fatalf("expected error for malformed duration")
	}

	// No partial output on failure.
	if _, err := os.Stat(filepath.Join(dir, "bad_out.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected no summary output, stat err: %v", err)
	}
}

func TestRun_NoExportSuppressesSummary(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "report.csv", "a,Total Alpha,c,2020-01-01,,,8")

	result, err := Run([]string{input}, defaultConfig(), Options{NoExport: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SummariesWritten != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "report_out.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected no summary output, stat err: %v", err)
	}
}

func TestRun_SavePlotWritesChart(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "report.csv", strings.Join([]string{
		"a,Total Alpha,c,2020-01-01,,,40",
		"a,Total Beta,c,2020-01-02,,,8",
	}, "\n"))

	result, err := Run([]string{input}, defaultConfig(), Options{SavePlot: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ChartsSaved != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	info, err := os.Stat(filepath.Join(dir, "report_out.png"))
	if err != nil {
		t.Fatalf("expected chart image: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty chart image")
	}
}

func TestRun_UnsupportedViewerIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "report.csv", "a,Total Alpha,c,2020-01-01,,,8")

	var notices []string
	result, err := Run([]string{input}, defaultConfig(), Options{
		Plot:   true,
		Viewer: &fakeViewer{supported: false},
		Notice: func(format string, a ...any) {
			notices = append(notices, fmt.Sprintf(format, a...))
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Missing display capability is reported, and the export still happens.
	found := false
	for _, notice := range notices {
		if strings.Contains(notice, "no image viewer") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a viewer notice, got %v", notices)
	}
	if result.SummariesWritten != 1 {
		t.Fatalf("expected summary still written: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "report_out.csv")); err != nil {
		t.Fatalf("expected summary output: %v", err)
	}
}

func TestRun_SupportedViewerShowsChart(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "report.csv", "a,Total Alpha,c,2020-01-01,,,8")

	viewer := &fakeViewer{supported: true}
	if _, err := Run([]string{input}, defaultConfig(), Options{Plot: true, Viewer: viewer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(viewer.shown) != 1 {
		t.Fatalf("expected one chart displayed, got %d", len(viewer.shown))
	}
}

func TestRun_ExcelFormatOverride(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "report.csv", "a,Total Alpha,c,2020-01-01,,,8")

	result, err := Run([]string{input}, defaultConfig(), Options{Format: "excel"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SummariesWritten != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "report_out.xlsx")); err != nil {
		t.Fatalf("expected excel output: %v", err)
	}
}

func TestRun_UnknownFormatFails(t *testing.T) {
	if _, err := Run(nil, defaultConfig(), Options{Format: "tsv"}); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}
