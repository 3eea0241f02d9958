package sheets

import (
	"time"

	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// PhasesName is the title of the phase plan sheet.
const PhasesName = "Migration Phases"

// DateLayout is the format used for planned phase dates.
const DateLayout = "2006-01-02"

// statusCol is the 1-based index of the Status column.
const statusCol = 9

// phase holds the static plan data for one migration phase; start and
// end are week offsets from the base date.
type phase struct {
	id           string
	name         string
	milestone    string
	startWeeks   int
	endWeeks     int
	dependencies string
	notes        string
}

var phasePlan = []phase{
	{"Phase 0", "Discovery & Inventory",
		"Complete inventory & get business sign-off", 0, 2,
		"Admin API access", "Run migration-inventory notebook"},
	{"Phase 1", "Target Capacity Setup",
		"New capacity provisioned & validated in East US 2", 2, 3,
		"Azure subscription, budget approval",
		"Match SKU to source; configure networking"},
	{"Phase 2", "Wave 1 – Low Complexity",
		"All movable-only workspaces migrated & validated", 3, 5,
		"Phase 1 complete",
		"Reports, Dashboards, Semantic models"},
	{"Phase 3", "Wave 2 – Medium Complexity",
		"Lakehouses / Warehouses migrated with data copy", 5, 8,
		"Phase 2 complete, data copy tooling ready",
		"Use AzCopy / Copy Job for data transfer"},
	{"Phase 4", "Wave 3 – High Complexity",
		"Notebooks, Pipelines, Eventhouses recreated & validated", 8, 12,
		"Phase 3 complete, Git integration",
		"Pipeline re-creation; end-to-end testing"},
	{"Phase 5", "Validation, Cutover & Decommission",
		"Business sign-off, source decommissioned", 12, 14,
		"All phases complete",
		"Parallel run → cutover → decom"},
}

// Phases returns the phase plan sheet layout with planned dates derived
// from base plus each phase's fixed week offsets.
func Phases(base time.Time) models.Definition {
	rows := make([][]interface{}, 0, len(phasePlan))
	for _, p := range phasePlan {
		start := base.AddDate(0, 0, 7*p.startWeeks).Format(DateLayout)
		end := base.AddDate(0, 0, 7*p.endWeeks).Format(DateLayout)
		rows = append(rows, []interface{}{
			p.id, p.name, p.milestone, "", start, end, "", "",
			"Not Started", "0%", p.dependencies, p.notes,
		})
	}

	return models.Definition{
		Name: PhasesName,
		Headers: []string{
			"Phase", "Phase Name", "Key Milestone", "Owner",
			"Planned Start", "Planned End", "Actual Start", "Actual End",
			"Status", "% Complete", "Dependencies", "Notes",
		},
		Rows:       rows,
		FreezeCell: "A2",
	}
}

// BuildPhases writes the phase plan sheet to f and centers the Status
// column.
func BuildPhases(f *excelize.File, set *style.Set, base time.Time) error {
	def := Phases(base)
	if err := Write(f, set, def); err != nil {
		return err
	}
	return set.CenterColumn(f, def.Name, statusCol, 2, def.TotalRows(), true)
}
