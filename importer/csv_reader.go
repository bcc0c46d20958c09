package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"qbtime/timesheet"
)

// CSVReader reads a QuickBooks timesheet export. The file has no header row;
// every record must carry exactly timesheet.FieldCount positional fields.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]timesheet.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	return r.readAll(path, file)
}

func (r *CSVReader) readAll(path string, src io.Reader) ([]timesheet.Row, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = timesheet.FieldCount

	rows := make([]timesheet.Row, 0, 128)
	rowNumber := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNumber++
		if err != nil {
			return nil, fmt.Errorf("read csv row %d of %s: %w", rowNumber, path, err)
		}

		row, err := timesheet.NewRow(record)
		if err != nil {
			return nil, fmt.Errorf("read csv row %d of %s: %w", rowNumber, path, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
