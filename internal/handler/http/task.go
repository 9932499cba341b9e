package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	// Admin only
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskItemService taskitem.TaskItemService
}

func NewTaskHandler(taskItemService taskitem.TaskItemService) TaskHandler {
	return &taskHandlerImpl{taskItemService: taskItemService}
}

// List handles GET /Tasks
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.taskItemService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// Get handles GET /Tasks/{id}
func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	item, err := h.taskItemService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, item)
}

// Create handles POST /Tasks
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req taskitem.TaskItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.taskItemService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created successfully.", item)
}

// Update handles PUT /Tasks/{id}
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req taskitem.TaskItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.taskItemService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, item)
}

// Delete handles DELETE /Tasks/{id}
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.taskItemService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.NoContent(w)
}
