package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Wrong credentials. Please try again.")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrGoogleNotEnabled):
		NotFound(w, "Google login is not configured")

	// User domain errors
	case errors.Is(err, user.ErrUserEmailExists):
		BadRequest(w, "This email address is already in use", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrForeignDashboard):
		Forbidden(w, "You may only view your own dashboard")

	// Entry errors
	case errors.Is(err, dayentry.ErrDayEntryRequired):
		BadRequest(w, "DayEntry is required.", nil)
	case errors.Is(err, dayentry.ErrDayEntryNotFound):
		NotFound(w, "Day entry not found.")
	case errors.Is(err, taskentry.ErrTaskEntryRequired):
		BadRequest(w, "TaskEntry is required.", nil)
	case errors.Is(err, taskentry.ErrTaskEntryNotFound):
		NotFound(w, "Task entry not found.")
	case errors.Is(err, leaveentry.ErrLeaveEntryRequired):
		BadRequest(w, "LeaveEntry is required.", nil)
	case errors.Is(err, leaveentry.ErrLeaveEntryNotFound):
		NotFound(w, "Leave entry not found.")

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found.")
	case errors.Is(err, job.ErrJobFieldsRequired):
		BadRequest(w, "Job name and number are required.", nil)
	case errors.Is(err, job.ErrJobNumberExists):
		BadRequest(w, "A job with the same job number already exists.", nil)
	case errors.Is(err, job.ErrJobHasTaskEntries):
		BadRequest(w, "Cannot delete this job because it has associated task entries. Please delete the task entries first.", nil)
	case errors.Is(err, job.ErrJobIDMismatch):
		BadRequest(w, "Job id does not match the request.", nil)
	case errors.Is(err, job.ErrImportFileRequired):
		BadRequest(w, "A CSV file is required.", nil)
	case errors.Is(err, job.ErrImportFileUnreadable):
		BadRequest(w, "The uploaded file is not valid CSV.", nil)

	// Task catalog errors
	case errors.Is(err, taskitem.ErrTaskItemNotFound):
		NotFound(w, "Task not found.")
	case errors.Is(err, taskitem.ErrTaskDescriptionRequired):
		BadRequest(w, "Task description is required.", nil)

	// Report errors
	case errors.Is(err, report.ErrGroupRequired):
		BadRequest(w, "Group is required.", nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date.", nil)
	case errors.Is(err, report.ErrSearchTermRequired):
		BadRequest(w, "Search term is required.", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
