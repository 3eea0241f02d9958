// Package models defines the layout contracts for tracker sheets.
package models

import "fmt"

// Definition describes a single worksheet: its name, header row, seed
// rows, blank placeholder rows, and presentation flags.
type Definition struct {
	// Name is the worksheet title, unique within the workbook.
	Name string
	// Headers is the ordered header row (row 1).
	Headers []string
	// Rows contains the seed rows, each aligned positionally with Headers.
	Rows [][]interface{}
	// BlankRows is the number of empty placeholder rows appended after Rows.
	BlankRows int
	// Filterable enables an auto filter spanning the headers and all rows.
	Filterable bool
	// FreezeCell is the top-left unfrozen cell (e.g. "A2" or "B2").
	// Empty disables frozen panes.
	FreezeCell string
}

// Validate checks that the definition is named and that every seed row
// has the same arity as Headers.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("sheet definition has no name")
	}
	if len(d.Headers) == 0 {
		return fmt.Errorf("sheet %q has no headers", d.Name)
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("sheet %q row %d has %d cells, want %d",
				d.Name, i+1, len(row), len(d.Headers))
		}
	}
	return nil
}

// TotalRows returns the number of occupied rows including the header row.
func (d Definition) TotalRows() int {
	return 1 + len(d.Rows) + d.BlankRows
}
