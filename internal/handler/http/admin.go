package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	// Users lists every user, optionally filtered by ?group
	Users(w http.ResponseWriter, r *http.Request)
	ExportToExcel(w http.ResponseWriter, r *http.Request)
	ExportJobDetailsToExcel(w http.ResponseWriter, r *http.Request)
	JobDetails(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	userService   user.UserService
	jobService    job.JobService
	reportService report.ReportService
}

func NewAdminHandler(userService user.UserService, jobService job.JobService, reportService report.ReportService) AdminHandler {
	return &adminHandlerImpl{
		userService:   userService,
		jobService:    jobService,
		reportService: reportService,
	}
}

// Users handles GET /Admin
func (h *adminHandlerImpl) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context(), r.URL.Query().Get("group"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// ExportToExcel handles GET /Admin/ExportToExcel?group&startDate&endDate
func (h *adminHandlerImpl) ExportToExcel(w http.ResponseWriter, r *http.Request) {
	req := report.WorkbookRequest{
		Group:     r.URL.Query().Get("group"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	export, err := h.reportService.ExportWorkbook(r.Context(), req)
	if err != nil {
		slog.Error("ExportToExcel error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, export.ContentType, export.FileName, export.Content)
}

// ExportJobDetailsToExcel handles GET /Admin/ExportJobDetailsToExcel?searchTerm
func (h *adminHandlerImpl) ExportJobDetailsToExcel(w http.ResponseWriter, r *http.Request) {
	req := report.JobDetailsRequest{SearchTerm: r.URL.Query().Get("searchTerm")}

	export, err := h.reportService.ExportJobDetails(r.Context(), req)
	if err != nil {
		slog.Error("ExportJobDetailsToExcel error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, export.ContentType, export.FileName, export.Content)
}

// JobDetails handles GET /Admin/JobDetails?searchTerm
func (h *adminHandlerImpl) JobDetails(w http.ResponseWriter, r *http.Request) {
	req := report.JobDetailsRequest{SearchTerm: r.URL.Query().Get("searchTerm")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	details, err := h.jobService.Details(r.Context(), req.SearchTerm)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, details)
}
