package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"qbtime/timesheet"
)

// Writer persists a summary to a file. Ext is the extension the writer
// expects its output paths to carry, including the leading dot.
type Writer interface {
	Write(path string, summary timesheet.Summary) error
	Ext() string
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// OutputPath derives an output path from an input path: same directory and
// base name, original extension replaced by suffix+ext
// (report.csv -> report_out.csv).
func OutputPath(input, suffix, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + ext
}

// FormatDays renders a days value as a plain decimal with the shortest
// representation that round-trips, keeping a ".0" on integral values so a
// whole number of days still reads as a decimal quantity.
func FormatDays(days float64) string {
	value := strconv.FormatFloat(days, 'g', -1, 64)
	if !strings.ContainsAny(value, ".eE") {
		value += ".0"
	}
	return value
}
