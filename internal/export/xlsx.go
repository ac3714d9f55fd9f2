package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// ExportXLSX writes one row per placed block (name, x, y, w, h, rotated,
// group) to path, the write-side counterpart of the importer's tabular
// excelize reader.
func ExportXLSX(path string, report *model.RunReport) error {
	if len(report.Blocks) == 0 {
		return fmt.Errorf("no blocks to export")
	}

	groupName := make([]string, len(report.Groups))
	for i, g := range report.Groups {
		groupName[i] = g.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Placement"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Name", "X", "Y", "Width", "Height", "Rotated", "Group"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, b := range report.Blocks {
		row := i + 2
		group := ""
		if b.GID >= 0 && b.GID < len(groupName) {
			group = groupName[b.GID]
		}
		values := []any{b.Name, b.X, b.Y, b.RotatedWidth(), b.RotatedHeight(), b.Rotated, group}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("build cell for %q: %w", b.Name, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row for %q: %w", b.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
