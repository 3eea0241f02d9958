package sheets

import (
	"errors"
	"testing"
	"time"

	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

func base() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func definitions() []models.Definition {
	return []models.Definition{
		Inventory(),
		Phases(base()),
		RiskRegister(),
		RACIMatrix(),
		IssueTracker(),
		Checklist(),
	}
}

func TestDefinitionsAreWellFormed(t *testing.T) {
	counts := map[string]struct{ cols, seed, blank int }{
		InventoryName:    {14, 2, 20},
		PhasesName:       {12, 6, 0},
		RiskRegisterName: {10, 10, 10},
		RACIMatrixName:   {8, 17, 0},
		IssueTrackerName: {10, 1, 30},
		ChecklistName:    {9, 15, 15},
	}

	for _, def := range definitions() {
		if err := def.Validate(); err != nil {
			t.Errorf("Definition %q is invalid: %v", def.Name, err)
		}
		want, ok := counts[def.Name]
		if !ok {
			t.Errorf("Unexpected sheet name %q", def.Name)
			continue
		}
		if len(def.Headers) != want.cols {
			t.Errorf("Sheet %q has %d columns, expected %d", def.Name, len(def.Headers), want.cols)
		}
		if len(def.Rows) != want.seed {
			t.Errorf("Sheet %q has %d seed rows, expected %d", def.Name, len(def.Rows), want.seed)
		}
		if def.BlankRows != want.blank {
			t.Errorf("Sheet %q has %d blank rows, expected %d", def.Name, def.BlankRows, want.blank)
		}
	}
}

func TestFilterRange(t *testing.T) {
	tests := []struct {
		def      models.Definition
		expected string
	}{
		{Inventory(), "A1:N23"},
		{RiskRegister(), "A1:J21"},
		{IssueTracker(), "A1:J32"},
		{Checklist(), "A1:I31"},
	}
	for _, tt := range tests {
		if got := FilterRange(tt.def); got != tt.expected {
			t.Errorf("FilterRange(%s) = %q, expected %q", tt.def.Name, got, tt.expected)
		}
	}
}

func TestRACICellsAreValidCodes(t *testing.T) {
	def := RACIMatrix()
	for i, row := range def.Rows {
		for c := 1; c < len(row); c++ {
			val, ok := row[c].(string)
			if !ok {
				t.Fatalf("Row %d col %d is not a string", i+1, c+1)
			}
			if _, ok := models.ParseCode(val); !ok {
				t.Errorf("Row %d col %d holds %q, not a RACI code", i+1, c+1, val)
			}
		}
	}
}

func TestPhaseDatesAreOrdered(t *testing.T) {
	def := Phases(base())

	prevStart, prevEnd := "", ""
	for i, row := range def.Rows {
		start := row[4].(string)
		end := row[5].(string)
		if _, err := time.Parse(DateLayout, start); err != nil {
			t.Fatalf("Phase %d start %q does not parse: %v", i, start, err)
		}
		if _, err := time.Parse(DateLayout, end); err != nil {
			t.Fatalf("Phase %d end %q does not parse: %v", i, end, err)
		}
		if start > end {
			t.Errorf("Phase %d starts %s after its end %s", i, start, end)
		}
		if start < prevStart || end < prevEnd {
			t.Errorf("Phase %d (%s..%s) precedes phase %d (%s..%s)",
				i, start, end, i-1, prevStart, prevEnd)
		}
		prevStart, prevEnd = start, end
	}
}

func TestPhaseScheduleSpan(t *testing.T) {
	def := Phases(base())

	first := def.Rows[0][4].(string)
	last := def.Rows[len(def.Rows)-1][5].(string)
	if first != "2026-03-02" {
		t.Errorf("Phase 0 start = %s, expected base date", first)
	}
	// 14 weeks after the base date.
	if last != "2026-06-08" {
		t.Errorf("Final phase end = %s, expected 2026-06-08", last)
	}
}

func TestWriteRejectsDuplicateName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	set, err := style.NewSet(f)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	if err := Write(f, set, Inventory()); err != nil {
		t.Fatalf("First Write failed: %v", err)
	}
	err = Write(f, set, Inventory())
	if !errors.Is(err, ErrDuplicateSheet) {
		t.Errorf("Second Write = %v, expected ErrDuplicateSheet", err)
	}
}

func TestWritePopulatesSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	set, err := style.NewSet(f)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	def := RiskRegister()
	if err := Write(f, set, def); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	rows, err := f.GetRows(def.Name)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) < 1+len(def.Rows) {
		t.Fatalf("Sheet has %d rows, expected at least %d", len(rows), 1+len(def.Rows))
	}
	for i, h := range def.Headers {
		if rows[0][i] != h {
			t.Errorf("Header %d = %q, expected %q", i+1, rows[0][i], h)
		}
	}
	if rows[1][0] != "R-001" {
		t.Errorf("First seed cell = %q, expected R-001", rows[1][0])
	}

	panes, err := f.GetPanes(def.Name)
	if err != nil {
		t.Fatalf("GetPanes failed: %v", err)
	}
	if !panes.Freeze || panes.YSplit != 1 {
		t.Errorf("Panes = %+v, expected frozen header row", panes)
	}
}
