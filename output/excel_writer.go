package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"earlyexport/early"
	"earlyexport/timesheet"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, entries []early.TimeEntry) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	headers := []string{"Activity", "Duration", "Note"}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []string{
			entry.ActivityLabel(),
			timesheet.CalculateDuration(entry.Duration),
			entry.NoteText(),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
