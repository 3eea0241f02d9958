package sheets

import (
	"github.com/fabricops/migtracker/pkg/tracker/models"
	"github.com/fabricops/migtracker/pkg/tracker/style"
	"github.com/xuri/excelize/v2"
)

// IssueTrackerName is the title of the issue log sheet.
const IssueTrackerName = "Issue Tracker"

// IssueTracker returns the issue log layout: one example row plus blank
// rows for issues raised during migration.
func IssueTracker() models.Definition {
	return models.Definition{
		Name: IssueTrackerName,
		Headers: []string{
			"Issue ID", "Date Raised", "Workspace / Item",
			"Issue Description", "Severity (P1/P2/P3/P4)",
			"Assigned To", "Status", "Resolution", "Date Resolved", "Notes",
		},
		Rows: [][]interface{}{
			{"ISS-001", "", "Example Workspace / Lakehouse",
				"(Example) Data mismatch after copy – row count differs by 5",
				"P2", "", "Open", "", "", ""},
		},
		BlankRows:  30,
		Filterable: true,
		FreezeCell: "A2",
	}
}

// BuildIssueTracker writes the issue log sheet to f.
func BuildIssueTracker(f *excelize.File, set *style.Set) error {
	return Write(f, set, IssueTracker())
}
