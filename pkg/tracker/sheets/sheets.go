// Package sheets builds the six worksheets of the migration tracker.
package sheets

import (
	"errors"
	"fmt"

	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// ErrDuplicateSheet indicates a sheet name is already present in the
// workbook.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// Write appends the sheet described by def to f: header row, seed rows,
// blank placeholder rows, then the standard header/data styling, column
// widths, auto filter, and frozen panes.
func Write(f *excelize.File, set *style.Set, def models.Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	idx, err := f.GetSheetIndex(def.Name)
	if err != nil {
		return err
	}
	if idx >= 0 {
		return fmt.Errorf("sheet %q: %w", def.Name, ErrDuplicateSheet)
	}
	if _, err := f.NewSheet(def.Name); err != nil {
		return err
	}

	if err := f.SetSheetRow(def.Name, "A1", &def.Headers); err != nil {
		return err
	}
	for i := range def.Rows {
		cell := fmt.Sprintf("A%d", 2+i)
		if err := f.SetSheetRow(def.Name, cell, &def.Rows[i]); err != nil {
			return err
		}
	}

	// Blank rows carry empty strings so the sheet dimension and filter
	// range cover them.
	blank := make([]interface{}, len(def.Headers))
	for i := range blank {
		blank[i] = ""
	}
	for j := 0; j < def.BlankRows; j++ {
		cell := fmt.Sprintf("A%d", 2+len(def.Rows)+j)
		if err := f.SetSheetRow(def.Name, cell, &blank); err != nil {
			return err
		}
	}

	cols := len(def.Headers)
	last := def.TotalRows()

	if err := set.HeaderRow(f, def.Name, cols); err != nil {
		return err
	}
	if last > 1 {
		if err := set.DataRows(f, def.Name, 2, last, cols, true); err != nil {
			return err
		}
	}
	if err := style.AutoWidth(f, def.Name, cols, style.MinWidth, style.MaxWidth); err != nil {
		return err
	}

	if def.Filterable {
		if err := f.AutoFilter(def.Name, FilterRange(def), nil); err != nil {
			return err
		}
	}
	if def.FreezeCell != "" {
		if err := freeze(f, def.Name, def.FreezeCell); err != nil {
			return err
		}
	}

	return nil
}

// FilterRange returns the auto-filter reference spanning the header row
// and all seed and blank rows, e.g. "A1:N23".
func FilterRange(def models.Definition) string {
	end, _ := excelize.CoordinatesToCellName(len(def.Headers), def.TotalRows())
	return "A1:" + end
}

// freeze locks the rows above and the columns left of cell.
func freeze(f *excelize.File, sheet, cell string) error {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return err
	}

	active := "bottomLeft"
	if col > 1 {
		active = "bottomRight"
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: cell,
		ActivePane:  active,
	})
}
