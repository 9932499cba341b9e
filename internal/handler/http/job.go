package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxImportSize = 10 << 20

type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	// Import stages an uploaded CSV and syncs it into the catalog
	Import(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type jobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &jobHandlerImpl{jobService: jobService}
}

// List handles GET /Jobs?searchTerm&pageNumber&pageSize
func (h *jobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := job.JobFilter{
		SearchTerm: r.URL.Query().Get("searchTerm"),
		PageNumber: intQuery(r, "pageNumber"),
		PageSize:   intQuery(r, "pageSize"),
	}

	result, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.PageNumber,
		Limit:      result.PageSize,
		TotalItems: result.TotalJobs,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /Jobs/{id}
func (h *jobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	result, err := h.jobService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /Jobs/{id}
func (h *jobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.jobService.Update(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /Jobs/{id}
func (h *jobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully.", nil)
}

// Details handles GET /Jobs/Details/{jobNumber}
func (h *jobHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	result, err := h.jobService.Details(r.Context(), chi.URLParam(r, "jobNumber"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import handles POST /Jobs/Import (multipart field "file")
func (h *jobHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			response.HandleError(w, job.ErrImportFileRequired)
			return
		}
		slog.Error("Job import upload error", "error", err)
		response.BadRequest(w, "Invalid upload", nil)
		return
	}
	defer file.Close()

	imported, err := h.jobService.Import(r.Context(), file)
	if err != nil {
		slog.Error("Job import error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Jobs imported successfully.", map[string]int{"imported": imported})
}

// Sync handles POST /Jobs/Sync
func (h *jobHandlerImpl) Sync(w http.ResponseWriter, r *http.Request) {
	synced, err := h.jobService.Sync(r.Context())
	if err != nil {
		slog.Error("Job sync error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Jobs synced successfully.", map[string]int{"synced": synced})
}
