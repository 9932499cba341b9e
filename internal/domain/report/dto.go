package report

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv"
)

// FileExport is a generated download.
type FileExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ========================================
// TASK ENTRIES WORKBOOK
// ========================================

type WorkbookRequest struct {
	Group     string `json:"group"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// Parsed by Validate
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (r *WorkbookRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Group = strings.TrimSpace(r.Group)

	start, startOK := validator.IsValidDate(strings.TrimSpace(r.StartDate))
	if !startOK {
		errs.Add("startDate", "startDate is required in YYYY-MM-DD format")
	}
	end, endOK := validator.IsValidDate(strings.TrimSpace(r.EndDate))
	if !endOK {
		errs.Add("endDate", "endDate is required in YYYY-MM-DD format")
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if end.Before(start) {
		return ErrInvalidDateRange
	}

	r.From = start
	r.To = end
	return nil
}

// ========================================
// JOB DETAILS WORKBOOK
// ========================================

type JobDetailsRequest struct {
	SearchTerm string `json:"search_term"`
}

func (r *JobDetailsRequest) Validate() error {
	if validator.IsEmpty(r.SearchTerm) {
		return ErrSearchTermRequired
	}
	r.SearchTerm = strings.TrimSpace(r.SearchTerm)
	return nil
}

// ========================================
// TIMESHEET CSV
// ========================================

type TimesheetRequest struct {
	Group    string  `json:"group"`
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
}

func (r *TimesheetRequest) Validate() error {
	if validator.IsEmpty(r.Group) {
		return ErrGroupRequired
	}
	r.Group = strings.TrimSpace(r.Group)

	var errs validator.ValidationErrors
	if !validator.IsValidOptionalDate(r.FromDate) {
		errs.Add("fromDate", "fromDate must be in YYYY-MM-DD format")
	}
	if !validator.IsValidOptionalDate(r.ToDate) {
		errs.Add("toDate", "toDate must be in YYYY-MM-DD format")
	}
	return errs.Err()
}

// Filter converts the request into a repository filter; To is exclusive (toDate + 1 day).
func (r *TimesheetRequest) Filter() (TimesheetFilter, error) {
	filter := TimesheetFilter{Group: r.Group}
	if !validator.IsEmptyPtr(r.FromDate) {
		from, err := timeutil.ParseDate(strings.TrimSpace(*r.FromDate))
		if err != nil {
			return TimesheetFilter{}, err
		}
		filter.From = &from
	}
	if !validator.IsEmptyPtr(r.ToDate) {
		to, err := timeutil.ParseDate(strings.TrimSpace(*r.ToDate))
		if err != nil {
			return TimesheetFilter{}, err
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	return filter, nil
}

type TimesheetFilter struct {
	Group string
	From  *time.Time
	To    *time.Time
}

// TimesheetRow is one task entry joined with its owner and job.
type TimesheetRow struct {
	FirstName  string
	LastName   string
	Email      string
	Group      string
	Date       *time.Time
	JobDisplay string
	TaskName   string
	Duration   *float64
	Comment    string
}

func (r TimesheetRow) EmployeeName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
