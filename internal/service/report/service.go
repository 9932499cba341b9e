package report

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const (
	workbookFileName   = "TaskEntries.xlsx"
	workbookSheet      = "Sheet1"
	workbookTitle      = "All Employees Time by Date Range"
	jobDetailsFileName = "JobDetails.xlsx"
	jobDetailsSheet    = "JobDetails"
	jobDetailsTitle    = "Job Details"

	colorLightGray            = "D3D3D3"
	colorLightGoldenrodYellow = "FAFAD2"
)

var (
	workbookHeaders   = []string{"Employee", "Date", "Job No", "Hours", "Task", "Description", "Per Diem", "Day Total"}
	workbookWidths    = []float64{50, 10, 35, 10, 40, 40, 10, 10}
	jobDetailsHeaders = []string{"First Name", "Last Name", "Job Number", "Job Name", "Date", "Task", "Duration"}
	jobDetailsWidths  = []float64{15, 15, 20, 50, 15, 45, 10}
	timesheetHeader   = "Employee,Email,Group,Date,Job,Task,Duration,Comment"
)

type ReportServiceImpl struct {
	users   user.UserRepository
	tasks   taskentry.TaskEntryRepository
	leaves  leaveentry.LeaveEntryRepository
	jobs    job.JobRepository
	reports report.ReportRepository
	now     func() time.Time
}

func NewReportService(
	userRepository user.UserRepository,
	taskEntryRepository taskentry.TaskEntryRepository,
	leaveEntryRepository leaveentry.LeaveEntryRepository,
	jobRepository job.JobRepository,
	reportRepository report.ReportRepository,
) report.ReportService {
	return &ReportServiceImpl{
		users:   userRepository,
		tasks:   taskEntryRepository,
		leaves:  leaveEntryRepository,
		jobs:    jobRepository,
		reports: reportRepository,
		now:     time.Now,
	}
}

// ExportWorkbook implements report.ReportService.
func (s *ReportServiceImpl) ExportWorkbook(ctx context.Context, req report.WorkbookRequest) (report.FileExport, error) {
	if err := req.Validate(); err != nil {
		return report.FileExport{}, err
	}

	users, err := s.users.ListByGroup(ctx, req.Group)
	if err != nil {
		return report.FileExport{}, fmt.Errorf("failed to list users: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sh := &sheet{file: f, name: workbookSheet}
	sh.setup(workbookTitle, 9, workbookHeaders, workbookWidths)

	from, to := req.From, req.To.AddDate(0, 0, 1)
	row := 3
	for _, u := range users {
		tasks, err := s.tasks.ListByUserInRange(ctx, u.ID, from, to)
		if err != nil {
			return report.FileExport{}, fmt.Errorf("failed to list task entries: %w", err)
		}
		leaves, err := s.leaves.ListByUserInRange(ctx, u.ID, from, to)
		if err != nil {
			return report.FileExport{}, fmt.Errorf("failed to list leave entries: %w", err)
		}

		row = writeUserEntries(sh, u, report.MergeByDate(tasks, leaves), row)

		summary := fmt.Sprintf("Summary for %s %s", u.FirstName, u.LastName)
		sh.set(1, row, summary)
		sh.merge(1, row, 2, row)
		sh.style(1, row, 4, row, sh.fillStyle(colorLightGoldenrodYellow, false))
		sh.set(4, row, payableHours(tasks, leaves))
		row++
	}

	return sh.export(workbookFileName)
}

// writeUserEntries writes one row per entry and the running day total on the last row
// of each date. It returns the next free row.
func writeUserEntries(sh *sheet, u user.User, entries []report.Entry, row int) int {
	var lastDate *time.Time
	dayTotal := 0.0
	first := true

	for _, entry := range entries {
		date := entryDate(entry)
		if lastDate != nil && !sameDate(date, lastDate) && row > 3 {
			sh.set(8, row-1, dayTotal)
			dayTotal = 0
		}

		if first {
			sh.set(1, row, employeeLabel(u))
			first = false
		}
		if date != nil {
			sh.set(2, row, date.Format("01/02/06"))
		}

		switch e := entry.(type) {
		case report.TaskLine:
			if e.Job != nil {
				sh.set(3, row, e.Job.JobNumber)
			}
			if e.Duration != nil {
				sh.set(4, row, *e.Duration)
			}
			sh.set(5, row, deref(e.TaskName))
			sh.set(6, row, deref(e.Comment))
			sh.set(7, row, "TBA")
			dayTotal += e.Hours()
		case report.LeaveLine:
			sh.set(3, row, e.Type())
			if e.LeaveDuration != nil {
				sh.set(4, row, *e.LeaveDuration)
			}
			sh.set(5, row, e.Type())
			sh.set(6, row, deref(e.Status))
			sh.set(7, row, "N/A")
			dayTotal += e.Hours()
		}
		lastDate = date
		row++
	}

	if lastDate != nil && row > 3 {
		sh.set(8, row-1, dayTotal)
	}
	return row
}

// payableHours is task hours plus every leave type except unpaid time off.
func payableHours(tasks []taskentry.TaskEntry, leaves []leaveentry.LeaveEntry) float64 {
	total := 0.0
	for i := range tasks {
		total += tasks[i].Hours()
	}
	for i := range leaves {
		if !leaves[i].IsUnpaid() {
			total += leaves[i].Hours()
		}
	}
	return total
}

func employeeLabel(u user.User) string {
	label := u.FirstName + " " + u.LastName + " - "
	if u.EmployeeNumber != nil {
		label += strconv.Itoa(*u.EmployeeNumber)
	}
	return label
}

// ExportJobDetails implements report.ReportService.
func (s *ReportServiceImpl) ExportJobDetails(ctx context.Context, req report.JobDetailsRequest) (report.FileExport, error) {
	if err := req.Validate(); err != nil {
		return report.FileExport{}, err
	}

	details, err := s.jobs.ListDetails(ctx, req.SearchTerm)
	if err != nil {
		return report.FileExport{}, fmt.Errorf("failed to list job details: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sh := &sheet{file: f, name: jobDetailsSheet}
	sh.setup(jobDetailsTitle, 7, jobDetailsHeaders, jobDetailsWidths)
	bold := sh.boldStyle()

	row := 3
	grandTotal := 0.0
	for _, group := range groupByUser(details) {
		userTotal := 0.0
		for _, d := range group {
			sh.set(1, row, d.FirstName)
			sh.set(2, row, d.LastName)
			sh.set(3, row, d.JobNumber)
			sh.set(4, row, d.JobName)
			if d.Date != nil {
				sh.set(5, row, d.Date.Format("01/02/2006"))
			}
			sh.set(6, row, d.TaskName)
			if d.Duration != nil {
				sh.set(7, row, *d.Duration)
				userTotal += *d.Duration
			}
			row++
		}

		sh.set(6, row, "Total")
		sh.set(7, row, userTotal)
		sh.style(6, row, 7, row, bold)
		row++
		grandTotal += userTotal
	}

	sh.set(6, row, "Grand Total")
	sh.set(7, row, grandTotal)
	sh.style(6, row, 7, row, bold)

	return sh.export(jobDetailsFileName)
}

// groupByUser keeps the order in which each user first appears.
func groupByUser(details []job.Detail) [][]job.Detail {
	index := make(map[string]int)
	groups := make([][]job.Detail, 0)
	for _, d := range details {
		i, ok := index[d.AppUserID]
		if !ok {
			i = len(groups)
			index[d.AppUserID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], d)
	}
	return groups
}

// ExportTimesheet implements report.ReportService.
func (s *ReportServiceImpl) ExportTimesheet(ctx context.Context, req report.TimesheetRequest) (report.FileExport, error) {
	if err := req.Validate(); err != nil {
		return report.FileExport{}, err
	}
	filter, err := req.Filter()
	if err != nil {
		return report.FileExport{}, err
	}

	rows, err := s.reports.ListTimesheetRows(ctx, filter)
	if err != nil {
		return report.FileExport{}, fmt.Errorf("failed to list timesheet rows: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(timesheetHeader)
	sb.WriteString("\n")
	for _, r := range rows {
		date := ""
		if r.Date != nil {
			date = r.Date.Format("2006-01-02")
		}
		fields := []string{
			r.EmployeeName(),
			r.Email,
			r.Group,
			date,
			r.JobDisplay,
			r.TaskName,
			formatDuration(r.Duration),
			r.Comment,
		}
		for i, field := range fields {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(csvEscape(field))
		}
		sb.WriteString("\n")
	}

	return report.FileExport{
		FileName:    fmt.Sprintf("timesheet_%s_%s.csv", req.Group, s.now().UTC().Format("20060102150405")),
		ContentType: report.ContentTypeCSV,
		Content:     []byte(sb.String()),
	}, nil
}

// formatDuration renders at most two decimals with trailing zeros dropped.
func formatDuration(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(math.Round(*d*100)/100, 'f', -1, 64)
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or line break.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func entryDate(e report.Entry) *time.Time {
	switch v := e.(type) {
	case report.TaskLine:
		return v.Date
	case report.LeaveLine:
		return v.Date
	}
	return nil
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
