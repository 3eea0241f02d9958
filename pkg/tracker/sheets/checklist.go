package sheets

import (
	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// ChecklistName is the title of the post-migration validation sheet.
const ChecklistName = "Validation Checklist"

// Checklist returns the validation checklist layout, grouped by
// migration wave (1/2/3/"All").
func Checklist() models.Definition {
	return models.Definition{
		Name: ChecklistName,
		Headers: []string{
			"Wave", "Workspace Name", "Validation Step",
			"Expected Result", "Actual Result",
			"Pass/Fail", "Validated By", "Date", "Notes",
		},
		Rows: [][]interface{}{
			{1, "(Wave 1 workspace)", "Reports render correctly",
				"All visuals load without error", "", "", "", "", ""},
			{1, "(Wave 1 workspace)", "Semantic model refresh succeeds",
				"Refresh completes < 2x baseline duration", "", "", "", "", ""},
			{1, "(Wave 1 workspace)", "Dashboard tiles load",
				"All tiles display data", "", "", "", "", ""},
			{1, "(Wave 1 workspace)", "Data gateway connectivity",
				"On-prem data sources accessible", "", "", "", "", ""},
			{2, "(Wave 2 workspace)", "Lakehouse row counts match source",
				"Row count delta = 0", "", "", "", "", ""},
			{2, "(Wave 2 workspace)", "Warehouse query results match",
				"Checksum/hash comparison passes", "", "", "", "", ""},
			{2, "(Wave 2 workspace)", "SQL endpoint accessible",
				"Queries execute successfully", "", "", "", "", ""},
			{2, "(Wave 2 workspace)", "Semantic models connect to new lakehouse",
				"No connection errors", "", "", "", "", ""},
			{3, "(Wave 3 workspace)", "Notebooks execute without error",
				"All cells pass", "", "", "", "", ""},
			{3, "(Wave 3 workspace)", "Data pipelines run end-to-end",
				"Pipeline succeeds with expected output", "", "", "", "", ""},
			{3, "(Wave 3 workspace)", "Eventhouse ingestion active",
				"Events streaming into KQL database", "", "", "", "", ""},
			{3, "(Wave 3 workspace)", "Spark jobs complete on schedule",
				"Job duration within 2x baseline", "", "", "", "", ""},
			{3, "(Wave 3 workspace)", "Databricks connections functional",
				"Fabric pipeline invokes Databricks successfully", "", "", "", "", ""},
			{"All", "ALL", "Capacity utilization within thresholds",
				"CU% < 80% sustained", "", "", "", "", ""},
			{"All", "ALL", "No orphaned items in source region",
				"Source capacity empty", "", "", "", "", ""},
		},
		BlankRows:  15,
		Filterable: true,
		FreezeCell: "A2",
	}
}

// BuildChecklist writes the validation checklist sheet to f.
func BuildChecklist(f *excelize.File, set *style.Set) error {
	return Write(f, set, Checklist())
}
