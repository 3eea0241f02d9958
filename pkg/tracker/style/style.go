// Package style applies the tracker's presentation: the header band,
// alternating data-row fills, RACI category colors, and column widths.
package style

import (
	"unicode/utf8"

	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/xuri/excelize/v2"
)

const (
	headerFill = "1F4E79"
	altRowFill = "D6E4F0"

	headerRowHeight = 30

	// MinWidth and MaxWidth clamp the auto-width heuristic.
	MinWidth = 12
	MaxWidth = 50

	// widthPad is added to the longest cell length of each column.
	widthPad = 4
)

// Set holds the style IDs registered against a single workbook. Style
// IDs are file-scoped in excelize, so a Set must not be shared across
// files.
type Set struct {
	header      int
	data        int
	dataAlt     int
	centered    int
	centeredAlt int
	categorical map[models.Code]int
}

// NewSet registers the tracker styles with f and returns their IDs.
func NewSet(f *excelize.File) (*Set, error) {
	s := &Set{categorical: make(map[models.Code]int)}

	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Fill:      solidFill(headerFill),
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	wrapTop := &excelize.Alignment{Vertical: "top", WrapText: true}
	s.data, err = f.NewStyle(&excelize.Style{
		Alignment: wrapTop,
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	s.dataAlt, err = f.NewStyle(&excelize.Style{
		Fill:      solidFill(altRowFill),
		Alignment: wrapTop,
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	s.centered, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	s.centeredAlt, err = f.NewStyle(&excelize.Style{
		Fill:      solidFill(altRowFill),
		Alignment: center,
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	for _, code := range models.Codes() {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      solidFill(code.Fill()),
			Alignment: center,
			Border:    thinBorder(),
		})
		if err != nil {
			return nil, err
		}
		s.categorical[code] = id
	}

	return s, nil
}

// HeaderRow applies the header appearance to row 1, columns 1..cols.
func (s *Set) HeaderRow(f *excelize.File, sheet string, cols int) error {
	if err := f.SetCellStyle(sheet, "A1", cellName(cols, 1), s.header); err != nil {
		return err
	}
	return f.SetRowHeight(sheet, 1, headerRowHeight)
}

// DataRows applies borders and top-aligned wrapping to every cell in
// rows startRow..endRow, columns 1..cols. When alternate is set, every
// other row (odd offset from startRow) receives a light tint.
func (s *Set) DataRows(f *excelize.File, sheet string, startRow, endRow, cols int, alternate bool) error {
	for r := startRow; r <= endRow; r++ {
		id := s.data
		if alternate && (r-startRow)%2 == 1 {
			id = s.dataAlt
		}
		if err := f.SetCellStyle(sheet, cellName(1, r), cellName(cols, r), id); err != nil {
			return err
		}
	}
	return nil
}

// CenterColumn centers rows startRow..endRow of one column, preserving
// the alternating tint applied by DataRows.
func (s *Set) CenterColumn(f *excelize.File, sheet string, col, startRow, endRow int, alternate bool) error {
	for r := startRow; r <= endRow; r++ {
		id := s.centered
		if alternate && (r-startRow)%2 == 1 {
			id = s.centeredAlt
		}
		if err := f.SetCellStyle(sheet, cellName(col, r), cellName(col, r), id); err != nil {
			return err
		}
	}
	return nil
}

// Categorical colors a single cell by its RACI code. Values that do not
// parse as a code are left untouched.
func (s *Set) Categorical(f *excelize.File, sheet string, row, col int, value string) error {
	code, ok := models.ParseCode(value)
	if !ok {
		return nil
	}
	cell := cellName(col, row)
	return f.SetCellStyle(sheet, cell, cell, s.categorical[code])
}

// AutoWidth sizes columns 1..cols from the sheet's current contents:
// the longest of header and cell text plus padding, clamped to
// [minWidth, maxWidth]. Call after all rows are appended.
func AutoWidth(f *excelize.File, sheet string, cols, minWidth, maxWidth int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	for col := 1; col <= cols; col++ {
		best := 0
		for _, row := range rows {
			if col > len(row) {
				continue
			}
			if n := utf8.RuneCountInString(row[col-1]); n > best {
				best = n
			}
		}

		width := best + widthPad
		if width < minWidth {
			width = minWidth
		}
		if width > maxWidth {
			width = maxWidth
		}

		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return borders
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
