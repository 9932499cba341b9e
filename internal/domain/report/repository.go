package report

import "context"

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// ListTimesheetRows returns task entries of users in the group, ordered by date then last name.
	ListTimesheetRows(ctx context.Context, filter TimesheetFilter) ([]TimesheetRow, error)
}
