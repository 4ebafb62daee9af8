package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"earlyexport/early"
	"earlyexport/timesheet"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, entries []early.TimeEntry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Activity", "Duration", "Note"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			entry.ActivityLabel(),
			timesheet.CalculateDuration(entry.Duration),
			entry.NoteText(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
