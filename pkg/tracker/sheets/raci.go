package sheets

import (
	"fmt"

	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// RACIMatrixName is the title of the responsibility-assignment sheet.
const RACIMatrixName = "RACI Matrix"

// RACIMatrix returns the RACI matrix layout: one row per migration task,
// one column per role, cells carrying RACI codes.
func RACIMatrix() models.Definition {
	return models.Definition{
		Name: RACIMatrixName,
		Headers: []string{
			"Task / Activity",
			"Fabric Admin", "Cloud Platform Team", "Data Engineering",
			"BI / Analytics", "Business Owner", "Security / Networking",
			"Project Manager",
		},
		Rows: [][]interface{}{
			{"Run inventory notebook", "R/A", "I", "C", "I", "I", "I", "I"},
			{"Provision target Fabric capacity", "R", "A", "I", "I", "I", "C", "I"},
			{"Configure networking (VNet/PE)", "C", "R/A", "I", "I", "I", "R", "I"},
			{"Backup lakehouse/warehouse data", "C", "I", "R/A", "I", "I", "I", "I"},
			{"Migrate Wave 1 workspaces (movable)", "R/A", "I", "I", "C", "I", "I", "I"},
			{"Copy data to target lakehouses", "C", "I", "R/A", "I", "I", "I", "I"},
			{"Remove non-movable items from source", "R/A", "I", "C", "C", "I", "I", "I"},
			{"Reassign workspaces to target capacity", "R/A", "I", "I", "I", "I", "I", "I"},
			{"Recreate pipelines & notebooks", "C", "I", "R/A", "I", "I", "I", "I"},
			{"Recreate eventhouses & KQL databases", "C", "I", "R/A", "I", "I", "I", "I"},
			{"Validate reports & dashboards", "I", "I", "I", "R/A", "C", "I", "I"},
			{"Validate data pipelines end-to-end", "I", "I", "R/A", "C", "C", "I", "I"},
			{"Update Databricks connections", "I", "I", "R/A", "I", "I", "I", "I"},
			{"Business sign-off per wave", "I", "I", "I", "C", "R/A", "I", "I"},
			{"Decommission source capacities", "R", "A", "I", "I", "I", "C", "I"},
			{"Update private endpoints / DNS", "C", "R", "I", "I", "I", "R/A", "I"},
			{"Overall project coordination", "C", "C", "C", "C", "C", "C", "R/A"},
		},
		// Freeze the task column together with the header row.
		FreezeCell: "B2",
	}
}

// BuildRACIMatrix writes the RACI matrix to f and colors every code
// cell by its category.
func BuildRACIMatrix(f *excelize.File, set *style.Set) error {
	def := RACIMatrix()
	if err := Write(f, set, def); err != nil {
		return err
	}

	for i, row := range def.Rows {
		for c := 2; c <= len(def.Headers); c++ {
			val := fmt.Sprintf("%v", row[c-1])
			if err := set.Categorical(f, def.Name, 2+i, c, val); err != nil {
				return err
			}
		}
	}
	return nil
}
