package sheets

import (
	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// RiskRegisterName is the title of the risk register sheet.
const RiskRegisterName = "Risk Register"

// RiskRegister returns the risk register layout, pre-populated with the
// known migration risks.
func RiskRegister() models.Definition {
	return models.Definition{
		Name: RiskRegisterName,
		Headers: []string{
			"Risk ID", "Risk Description", "Category",
			"Likelihood (L/M/H)", "Impact (L/M/H)", "Risk Level",
			"Mitigation Strategy", "Risk Owner", "Status", "Notes",
		},
		Rows: [][]interface{}{
			{"R-001",
				"Non-movable items block workspace reassignment",
				"Technical", "High", "High", "Critical",
				"Pre-inventory all items; remove non-movable items before reassignment",
				"", "Open", "Use inventory notebook to classify items"},
			{"R-002",
				"Dataflow Gen2 staging lakehouses block migration",
				"Technical", "Medium", "High", "High",
				"Delete all Dataflow Gen2 items first, then delete staging lakehouses",
				"", "Open", "MS Learn: staging items only visible after DFGen2 deletion"},
			{"R-003",
				"Admin API rate limits (200 req/hr) slow discovery",
				"Technical", "Medium", "Low", "Medium",
				"Implement retry/backoff (already built into notebook helper)",
				"", "Mitigated", "fabric_api_get() handles 429s automatically"},
			{"R-004",
				"Large-storage-format semantic models cannot cross regions",
				"Technical", "Medium", "High", "High",
				"Identify large-storage models early; switch to small storage or recreate",
				"", "Open", "Check semantic model storage format before migration"},
			{"R-005",
				"Data loss during Lakehouse/Warehouse migration",
				"Data", "Low", "Critical", "High",
				"Full backup before migration; validate row counts and checksums post-copy",
				"", "Open", "Use parallel copy + validation queries"},
			{"R-006",
				"Running jobs cancelled during workspace reassignment",
				"Operational", "High", "Medium", "High",
				"Schedule migration during maintenance windows; notify users in advance",
				"", "Open", "MS Learn: reassignment cancels all running jobs"},
			{"R-007",
				"Business disruption during migration window",
				"Business", "Medium", "High", "High",
				"Phased approach with parallel run; communicate schedule to stakeholders",
				"", "Open", "Wave-based migration reduces blast radius"},
			{"R-008",
				"External dependencies not updated (Databricks, gateways)",
				"Integration", "Medium", "High", "High",
				"Document all external deps in inventory; update connection strings post-migration",
				"", "Open", "Databricks already in East US 2 – update Fabric endpoints only"},
			{"R-009",
				"Private Link / VNet configuration breaks after migration",
				"Networking", "Medium", "High", "High",
				"Disable Private Link before migration; reconfigure in target region after",
				"", "Open", "MS Learn: Private Link must be temporarily disabled"},
			{"R-010",
				"Insufficient capacity SKU in target region",
				"Planning", "Low", "High", "Medium",
				"Verify target region SKU availability; request quota increase if needed",
				"", "Open", "Check Azure capacity quotas before Phase 1"},
		},
		BlankRows:  10,
		Filterable: true,
		FreezeCell: "A2",
	}
}

// BuildRiskRegister writes the risk register sheet to f.
func BuildRiskRegister(f *excelize.File, set *style.Set) error {
	return Write(f, set, RiskRegister())
}
