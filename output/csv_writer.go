package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"qbtime/timesheet"
)

type CSVWriter struct{}

func (w *CSVWriter) Ext() string { return ".csv" }

func (w *CSVWriter) Write(path string, summary timesheet.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Project", "Days"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range summary {
		if err := writer.Write([]string{entry.Project, FormatDays(entry.Days)}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
