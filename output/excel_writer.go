package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"qbtime/timesheet"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Ext() string { return ".xlsx" }

func (w *ExcelWriter) Write(path string, summary timesheet.Summary) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range []string{"Project", "Days"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range summary {
		row := i + 2
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		if err := file.SetCellValue(sheet, nameCell, entry.Project); err != nil {
			return fmt.Errorf("set excel value %s: %w", nameCell, err)
		}
		daysCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := file.SetCellValue(sheet, daysCell, entry.Days); err != nil {
			return fmt.Errorf("set excel value %s: %w", daysCell, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
