package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// ExportWorkbook renders every group member's task and leave entries in the range.
	ExportWorkbook(ctx context.Context, req WorkbookRequest) (FileExport, error)

	// ExportJobDetails renders the task entries logged against one job number.
	ExportJobDetails(ctx context.Context, req JobDetailsRequest) (FileExport, error)

	// ExportTimesheet renders the group's task entries as CSV.
	ExportTimesheet(ctx context.Context, req TimesheetRequest) (FileExport, error)
}
