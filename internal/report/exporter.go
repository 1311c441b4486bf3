package report

import (
	"fmt"
	"time"

	"teamhours-be/internal/repository"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Work Hours"

var headerRow = []string{"Date", "Start Time", "End Time", "Total Hours", "Summary"}

// Exporter renders a user's work-hour entries for a month into an XLSX
// byte stream.
type Exporter interface {
	Export(userID string, month time.Time) ([]byte, error)
}

type xlsxExporter struct {
	workHours repository.WorkHoursRepository
}

// NewExporter creates a new XLSX report exporter
func NewExporter(workHours repository.WorkHoursRepository) Exporter {
	return &xlsxExporter{workHours: workHours}
}

// Export builds the spreadsheet in memory. Row order matches the store's
// listing order; a store failure yields no partial output.
func (e *xlsxExporter) Export(userID string, month time.Time) ([]byte, error) {
	entries, err := e.workHours.ListByMonth(userID, month.Year(), month.Month())
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range headerRow {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, wh := range entries {
		summary := ""
		if wh.Summary != nil {
			summary = *wh.Summary
		}
		values := []string{
			wh.DisplayStart().Format("2006-01-02"),
			wh.DisplayStart().Format("15:04:05"),
			wh.DisplayEnd().Format("15:04:05"),
			wh.TotalHours,
			summary,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
