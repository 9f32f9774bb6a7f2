// Package export renders study plans into downloadable formats.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/p-n-ai/pai-planner/internal/learning"
)

// SheetName is the worksheet holding the plan.
const SheetName = "Study Plan"

// ContentTypeXLSX is the MIME type of the spreadsheet.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"ID", "Topic", "Subject", "Priority", "Estimated Hours", "Reason"}

// WriteStudyPlanXLSX writes items as a single-sheet workbook: a header row,
// one row per item in plan order, then a total-hours row.
func WriteStudyPlanXLSX(w io.Writer, items []learning.StudyPlanItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	total := 0
	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{item.ID, item.Topic, item.Subject, item.Priority, item.EstimatedHours, item.Reason}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
		total += item.EstimatedHours
	}

	totalRow := len(items) + 2
	if err := f.SetCellValue(SheetName, fmt.Sprintf("D%d", totalRow), "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("E%d", totalRow), total); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "F", "F", 55); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
