package sheets

import (
	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// InventoryName is the title of the capacity/workspace inventory sheet.
const InventoryName = "Migration Inventory"

// Inventory returns the inventory sheet layout: two example rows plus
// blank rows to be filled from the inventory notebook's CSV exports.
func Inventory() models.Definition {
	return models.Definition{
		Name: InventoryName,
		Headers: []string{
			"Workspace Name", "Capacity Name", "SKU", "Source Region",
			"Target Region", "Item Name", "Item Type",
			"Movable?", "Migration Complexity", "Suggested Wave",
			"Business Owner", "Data Size (GB)", "External Dependencies",
			"Notes",
		},
		Rows: [][]interface{}{
			{"Sales Workspace", "FabCap-WestUS-01", "F64", "West US",
				"East US 2", "Sales Report", "Report",
				"✅ Yes", "Low", 1, "Jane Smith", "", "", ""},
			{"ETL Workspace", "FabCap-WestUS-01", "F64", "West US",
				"East US 2", "Ingest Pipeline", "DataPipeline",
				"❌ No", "High", 3, "Bob Jones", "~500",
				"Databricks (East US 2)", "Must re-create after reassignment"},
		},
		BlankRows:  20,
		Filterable: true,
		FreezeCell: "A2",
	}
}

// BuildInventory writes the inventory sheet to f.
func BuildInventory(f *excelize.File, set *style.Set) error {
	return Write(f, set, Inventory())
}
