package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type DashboardHandler interface {
	// Index returns the weekly view
	Index(w http.ResponseWriter, r *http.Request)
	ClockInOut(w http.ResponseWriter, r *http.Request)
	AddTaskEntry(w http.ResponseWriter, r *http.Request)
	DeleteTaskEntry(w http.ResponseWriter, r *http.Request)
	AddLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
	// DeleteDayEntries removes every day entry of one user on one date
	DeleteDayEntries(w http.ResponseWriter, r *http.Request)
	// Admin only
	AddJob(w http.ResponseWriter, r *http.Request)
	ExportTimeSheet(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  dashboard.DashboardService
	dayEntryService   dayentry.DayEntryService
	taskEntryService  taskentry.TaskEntryService
	leaveEntryService leaveentry.LeaveEntryService
	jobService        job.JobService
	reportService     report.ReportService
}

func NewDashboardHandler(
	dashboardService dashboard.DashboardService,
	dayEntryService dayentry.DayEntryService,
	taskEntryService taskentry.TaskEntryService,
	leaveEntryService leaveentry.LeaveEntryService,
	jobService job.JobService,
	reportService report.ReportService,
) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		dayEntryService:   dayEntryService,
		taskEntryService:  taskEntryService,
		leaveEntryService: leaveEntryService,
		jobService:        jobService,
		reportService:     reportService,
	}
}

// Index handles GET /Dashboard/Index?WeekSelect&userId
func (h *dashboardHandlerImpl) Index(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	req := dashboard.IndexRequest{
		WeekSelect: optionalQuery(r, "WeekSelect"),
		UserID:     r.URL.Query().Get("userId"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), caller, req)
	if err != nil {
		slog.Error("Dashboard index error", "error", err, "user_id", caller.UserID)
		var validationErrs validator.ValidationErrors
		if errors.Is(err, user.ErrForeignDashboard) || errors.As(err, &validationErrs) {
			response.HandleError(w, err)
			return
		}
		response.InternalServerError(w, "Internal Server Error: "+err.Error())
		return
	}

	response.Success(w, result)
}

// ClockInOut handles POST /Dashboard/ClockInOut
func (h *dashboardHandlerImpl) ClockInOut(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req dayentry.ClockInOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ClockInOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.dayEntryService.ClockInOut(r.Context(), caller, req)
	if err != nil {
		slog.Error("ClockInOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock In/Out successful", entry)
}

// AddTaskEntry handles POST /Dashboard/AddTaskEntry
func (h *dashboardHandlerImpl) AddTaskEntry(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req taskentry.AddTaskEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddTaskEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.taskEntryService.Save(r.Context(), caller, req)
	if err != nil {
		slog.Error("AddTaskEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task entry added/updated successfully", entry)
}

// DeleteTaskEntry handles DELETE /Dashboard/DeleteTaskEntry/{id}
func (h *dashboardHandlerImpl) DeleteTaskEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.taskEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task entry deleted successfully.", nil)
}

// AddLeave handles POST /Dashboard/AddLeave
func (h *dashboardHandlerImpl) AddLeave(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req leaveentry.AddLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.leaveEntryService.Save(r.Context(), caller, req)
	if err != nil {
		slog.Error("AddLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave entry added/updated successfully", entry)
}

// DeleteLeave handles DELETE /Dashboard/DeleteLeave/{id}
func (h *dashboardHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.leaveEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave entry deleted successfully.", nil)
}

// DeleteDay handles DELETE /Dashboard/DeleteDay/{id}
func (h *dashboardHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.dayEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day entry deleted successfully.", nil)
}

// DeleteDayEntries handles DELETE /Dashboard/DeleteDayEntries?date&userId
func (h *dashboardHandlerImpl) DeleteDayEntries(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	req := dayentry.DeleteByDateRequest{
		Date:   r.URL.Query().Get("date"),
		UserID: r.URL.Query().Get("userId"),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	deleted, err := h.dayEntryService.DeleteByDate(r.Context(), caller, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day entries deleted successfully.", map[string]int64{"deleted": deleted})
}

// AddJob handles POST /Dashboard/AddJob
func (h *dashboardHandlerImpl) AddJob(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.jobService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job created successfully.", created)
}

// ExportTimeSheet handles GET /Dashboard/ExportTimeSheet?group&fromDate&toDate
func (h *dashboardHandlerImpl) ExportTimeSheet(w http.ResponseWriter, r *http.Request) {
	req := report.TimesheetRequest{
		Group:    r.URL.Query().Get("group"),
		FromDate: optionalQuery(r, "fromDate"),
		ToDate:   optionalQuery(r, "toDate"),
	}

	export, err := h.reportService.ExportTimesheet(r.Context(), req)
	if err != nil {
		slog.Error("ExportTimeSheet error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, export.ContentType, export.FileName, export.Content)
}
