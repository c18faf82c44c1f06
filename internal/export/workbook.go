// Package export writes report tables to spreadsheet files.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet is a named table; cells may be strings, numbers or time values.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

type Workbook struct {
	Sheets []Sheet
}

// WriteXLSX saves wb to path with a bold header row on every sheet.
func WriteXLSX(wb Workbook, path string) error {
	if len(wb.Sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, sh := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sh.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sh.Name, err)
			}
		} else if _, err := f.NewSheet(sh.Name); err != nil {
			return fmt.Errorf("adding sheet %q: %w", sh.Name, err)
		}
		if err := writeSheet(f, sh, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sh Sheet, headerStyle int) error {
	header := make([]any, len(sh.Headers))
	for i, h := range sh.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sh.Name, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sh.Name, err)
	}
	if len(sh.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sh.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sh.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("styling %s header: %w", sh.Name, err)
		}
	}
	for r, row := range sh.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.Name, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sh.Name, r+2, err)
		}
	}
	return nil
}
