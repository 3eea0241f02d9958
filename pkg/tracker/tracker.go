package tracker

import (
	"github.com/fabricops/migtracker/pkg/tracker/sheets"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// SheetNames lists the workbook's sheets in build order.
func SheetNames() []string {
	return []string{
		sheets.InventoryName,
		sheets.PhasesName,
		sheets.RiskRegisterName,
		sheets.RACIMatrixName,
		sheets.IssueTrackerName,
		sheets.ChecklistName,
	}
}

// Build constructs the six-sheet migration tracker and writes it to
// opts.Output. The run either fully succeeds or no file is written.
func Build(opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	set, err := style.NewSet(f)
	if err != nil {
		return err
	}

	base := opts.baseDate()
	builders := []struct {
		name  string
		build func(*excelize.File, *style.Set) error
	}{
		{sheets.InventoryName, sheets.BuildInventory},
		{sheets.PhasesName, func(f *excelize.File, s *style.Set) error {
			return sheets.BuildPhases(f, s, base)
		}},
		{sheets.RiskRegisterName, sheets.BuildRiskRegister},
		{sheets.RACIMatrixName, sheets.BuildRACIMatrix},
		{sheets.IssueTrackerName, sheets.BuildIssueTracker},
		{sheets.ChecklistName, sheets.BuildChecklist},
	}
	for _, b := range builders {
		if err := b.build(f, set); err != nil {
			return &BuildError{Sheet: b.name, Err: err}
		}
	}

	// Drop the default sheet excelize creates and land the reader on
	// the inventory.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(sheets.InventoryName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)

	return f.SaveAs(opts.Output)
}
