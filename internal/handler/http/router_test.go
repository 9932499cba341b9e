package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/memory"
	authService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/dashboard"
	dayEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/dayentry"
	jobService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/job"
	leaveEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/leaveentry"
	reportService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/report"
	taskEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/taskentry"
	taskItemService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/taskitem"
	userService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/user"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type testServer struct {
	router     *chi.Mux
	jwtService jwt.Service
	store      *memory.Store
	worker     user.User
	admin      user.User
	userToken  string
	adminToken string
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	dayEntries := memory.NewDayEntryRepository(store)
	taskEntries := memory.NewTaskEntryRepository(store)
	leaveEntries := memory.NewLeaveEntryRepository(store)
	jobs := memory.NewJobRepository(store)
	taskItems := memory.NewTaskItemRepository(store)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, "1h")

	group1, adminGroup := "Group1", "Admin"
	worker, err := users.Create(ctx, user.User{Email: "user1@test.com", FirstName: "Wanda", LastName: "Worker", Group: &group1})
	require.NoError(t, err)
	admin, err := users.Create(ctx, user.User{Email: "admin1@test.com", FirstName: "Ada", LastName: "Admin", Group: &adminGroup, Role: user.RoleAdmin})
	require.NoError(t, err)

	jobSvc := jobService.NewJobService(store, jobs)
	reportSvc := reportService.NewReportService(users, taskEntries, leaveEntries, jobs, memory.NewReportRepository(store))

	router := NewRouter(RouterOptions{AllowedOrigins: []string{"http://localhost:4200"}}, jwtSvc, Handlers{
		Account: NewAccountHandler(authService.NewAuthService(users, jwtSvc), nil, "http://localhost:4200"),
		Dashboard: NewDashboardHandler(
			dashboardService.NewDashboardService(users, dayEntries, taskEntries, leaveEntries, jobs, taskItems),
			dayEntryService.NewDayEntryService(dayEntries),
			taskEntryService.NewTaskEntryService(taskEntries),
			leaveEntryService.NewLeaveEntryService(leaveEntries),
			jobSvc,
			reportSvc,
		),
		Job:   NewJobHandler(jobSvc),
		Task:  NewTaskHandler(taskItemService.NewTaskItemService(taskItems)),
		Admin: NewAdminHandler(userService.NewUserService(users), jobSvc, reportSvc),
	})

	userToken, _, err := jwtSvc.GenerateAccessToken(worker)
	require.NoError(t, err)
	adminToken, _, err := jwtSvc.GenerateAccessToken(admin)
	require.NoError(t, err)

	return testServer{
		router:     router,
		jwtService: jwtSvc,
		store:      store,
		worker:     worker,
		admin:      admin,
		userToken:  userToken,
		adminToken: adminToken,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func (s testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := decode(t, w)
	require.NotNil(t, env.Error)
	return env.Error.Message
}

func TestAccount_RegisterLoginLogout(t *testing.T) {
	s := newTestServer(t)

	register := map[string]any{
		"email_address":    "new@test.com",
		"password":         "P@ssw0rd!",
		"confirm_password": "P@ssw0rd!",
		"first_name":       "New",
		"last_name":        "Hire",
		"employee_number":  1111,
		"group":            "Group1",
	}
	w := s.do(t, http.MethodPost, "/api/Account/Register", "", register)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Registration successful. You can now log in.", decode(t, w).Message)

	w = s.do(t, http.MethodPost, "/api/Account/Register", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This email address is already in use", errorMessage(t, w))

	register["email_address"] = ""
	w = s.do(t, http.MethodPost, "/api/Account/Register", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Error.Details, "email_address")

	w = s.do(t, http.MethodPost, "/api/Account/Login", "", map[string]string{"email_address": "new@test.com", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Wrong credentials. Please try again.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Account/Login", "", map[string]string{"email_address": "new@test.com", "password": "P@ssw0rd!"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Login successful", env.Message)
	var login struct {
		AccessToken string   `json:"access_token"`
		IsAdmin     bool     `json:"is_admin"`
		Roles       []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.False(t, login.IsAdmin)
	assert.Equal(t, []string{"User"}, login.Roles)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/Dashboard/Index", login.AccessToken, nil).Code)

	w = s.do(t, http.MethodPost, "/api/Account/Logout", login.AccessToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/Dashboard/Index", login.AccessToken, nil).Code)
}

func TestDashboard_IndexAccess(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/Dashboard/Index", "", nil).Code)

	w := s.do(t, http.MethodGet, "/api/Dashboard/Index?WeekSelect=2024-03-06", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		WeekOf  string `json:"week_of"`
		UserID  string `json:"user_id"`
		IsAdmin bool   `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &view))
	assert.True(t, strings.HasPrefix(view.WeekOf, "2024-03-03"))
	assert.Equal(t, s.worker.ID, view.UserID)
	assert.False(t, view.IsAdmin)

	w = s.do(t, http.MethodGet, "/api/Dashboard/Index?userId="+s.admin.ID, s.userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/Dashboard/Index?userId="+s.worker.ID, s.adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/Dashboard/Index?WeekSelect=March", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard_ClockInOut(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/Dashboard/ClockInOut", s.userToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DayEntry is required.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Dashboard/ClockInOut", s.userToken, map[string]any{
		"day_entry": map[string]any{"date": "2024-03-06", "day_start_time": "08:00", "day_end_time": "16:30"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Clock In/Out successful", env.Message)
	var entry struct {
		ID           int64    `json:"id"`
		DayDuration  *float64 `json:"day_duration"`
		AppUserID    *string  `json:"app_user_id"`
		DayStartTime *string  `json:"day_start_time"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entry))
	require.NotNil(t, entry.AppUserID)
	assert.Equal(t, s.worker.ID, *entry.AppUserID)
	require.NotNil(t, entry.DayDuration)
	assert.Equal(t, 8.5, *entry.DayDuration)

	w = s.do(t, http.MethodPost, "/api/Dashboard/ClockInOut", s.userToken, map[string]any{
		"day_entry": map[string]any{"id": 999, "date": "2024-03-06"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Day entry not found.", errorMessage(t, w))

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/Dashboard/DeleteDay/%d", entry.ID), s.userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Day entry deleted successfully.", decode(t, w).Message)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/Dashboard/DeleteDay/%d", entry.ID), s.userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/Dashboard/DeleteDay/abc", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard_TaskAndLeaveEntries(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/Dashboard/AddTaskEntry", s.userToken, map[string]any{})
	assert.Equal(t, "TaskEntry is required.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddTaskEntry", s.userToken, map[string]any{
		"task_entry": map[string]any{"date": "2024-03-06", "task_name": "Framing", "duration": 2.5},
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Task entry added/updated successfully", env.Message)
	var task struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &task))

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/Dashboard/DeleteTaskEntry/%d", task.ID), s.userToken, nil)
	assert.Equal(t, "Task entry deleted successfully.", decode(t, w).Message)
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/Dashboard/DeleteTaskEntry/%d", task.ID), s.userToken, nil)
	assert.Equal(t, "Task entry not found.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddLeave", s.userToken, map[string]any{})
	assert.Equal(t, "LeaveEntry is required.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddLeave", s.userToken, map[string]any{
		"leave_entry": map[string]any{"date": "2024-03-07", "leave_type": "PTO", "leave_duration": 8},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Leave entry added/updated successfully", decode(t, w).Message)

	w = s.do(t, http.MethodDelete, "/api/Dashboard/DeleteLeave/1", s.userToken, nil)
	assert.Equal(t, "Leave entry deleted successfully.", decode(t, w).Message)
	w = s.do(t, http.MethodDelete, "/api/Dashboard/DeleteLeave/1", s.userToken, nil)
	assert.Equal(t, "Leave entry not found.", errorMessage(t, w))
}

func TestDashboard_DeleteDayEntries(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 2; i++ {
		w := s.do(t, http.MethodPost, "/api/Dashboard/ClockInOut", s.userToken, map[string]any{
			"day_entry": map[string]any{"date": "2024-03-06"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := s.do(t, http.MethodDelete, "/api/Dashboard/DeleteDayEntries?date=2024-03-06", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result map[string]int64
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Equal(t, int64(2), result["deleted"])

	w = s.do(t, http.MethodDelete, "/api/Dashboard/DeleteDayEntries?date=2024-03-06", s.userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/Dashboard/DeleteDayEntries", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJobs(t *testing.T) {
	s := newTestServer(t)
	addJob := map[string]any{"job_model": map[string]string{"job_number": "1001", "job_name": "Alpha"}}

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/Dashboard/AddJob", s.userToken, addJob).Code)

	w := s.do(t, http.MethodPost, "/api/Dashboard/AddJob", s.adminToken, addJob)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Job created successfully.", decode(t, w).Message)

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddJob", s.adminToken, addJob)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A job with the same job number already exists.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddJob", s.adminToken, map[string]any{"job_model": map[string]string{"job_name": "Nameless"}})
	assert.Equal(t, "Job name and number are required.", errorMessage(t, w))

	w = s.do(t, http.MethodGet, "/api/Jobs?searchTerm=alp", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		TotalJobs  int64 `json:"total_jobs"`
		PageSize   int   `json:"page_size"`
		TotalPages int   `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Equal(t, int64(1), list.TotalJobs)
	assert.Equal(t, 100, list.PageSize)
	assert.Equal(t, 1, list.TotalPages)

	update := map[string]any{"id": 1, "job_number": "1002", "job_name": "Beta"}
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPut, "/api/Jobs/1", s.userToken, update).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPut, "/api/Jobs/2", s.adminToken, update).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/Jobs/9", s.adminToken, map[string]any{"id": 9, "job_number": "9"}).Code)
	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodPut, "/api/Jobs/1", s.adminToken, update).Code)

	w = s.do(t, http.MethodGet, "/api/Jobs/1", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"job_number_and_job_name":"1002 - Beta"`)

	w = s.do(t, http.MethodPost, "/api/Dashboard/AddTaskEntry", s.userToken, map[string]any{
		"task_entry": map[string]any{"date": "2024-03-06", "job_id": 1, "task_name": "Framing", "duration": 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/Jobs/Details/1002", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"first_name":"Wanda"`)

	w = s.do(t, http.MethodDelete, "/api/Jobs/1", s.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot delete this job because it has associated task entries. Please delete the task entries first.", errorMessage(t, w))

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/Jobs/42", s.adminToken, nil).Code)
}

func TestJobs_Import(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "jobs.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Job Number,Job Name\n2001,Gamma\n,Skipped\n2002,Delta\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/Jobs/Import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.adminToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result map[string]int
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Equal(t, 2, result["imported"])

	w = s.do(t, http.MethodGet, "/api/Jobs", s.userToken, nil)
	assert.Contains(t, string(decode(t, w).Data), `"total_jobs":2`)

	w = s.do(t, http.MethodPost, "/api/Jobs/Import", s.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/Jobs/Sync", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &result))
	assert.Equal(t, 0, result["synced"])
}

func TestTasks(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/Tasks", s.userToken, map[string]string{"task_description": "Framing"}).Code)

	w := s.do(t, http.MethodPost, "/api/Tasks", s.adminToken, map[string]string{"task_description": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Task description is required.", errorMessage(t, w))

	w = s.do(t, http.MethodPost, "/api/Tasks", s.adminToken, map[string]string{"task_description": " Framing "})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"task_description":"Framing"`)

	w = s.do(t, http.MethodPut, "/api/Tasks/1", s.adminToken, map[string]string{"task_description": "Trim"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"task_description":"Trim"`)

	w = s.do(t, http.MethodGet, "/api/Tasks", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/Tasks/1", s.adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/Tasks/1", s.userToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/Tasks/1", s.adminToken, nil).Code)
}

func TestExports(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/Dashboard/AddTaskEntry", s.userToken, map[string]any{
		"task_entry": map[string]any{"date": "2024-03-06", "task_name": "Framing", "duration": 2, "comment": "north, wall"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/Dashboard/ExportTimeSheet?group=Group1", s.userToken, nil).Code)

	w = s.do(t, http.MethodGet, "/api/Dashboard/ExportTimeSheet", s.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Group is required.", errorMessage(t, w))

	w = s.do(t, http.MethodGet, "/api/Dashboard/ExportTimeSheet?group=Group1&fromDate=2024-03-01&toDate=2024-03-31", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentTypeCSV, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"timesheet_Group1_")
	assert.Equal(t,
		"Employee,Email,Group,Date,Job,Task,Duration,Comment\n"+
			"Wanda Worker,user1@test.com,Group1,2024-03-06,,Framing,2,\"north, wall\"\n",
		w.Body.String())

	w = s.do(t, http.MethodGet, "/api/Admin/ExportToExcel?group=Group1&startDate=2024-03-01&endDate=2024-03-31", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, report.ContentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="TaskEntries.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.NotZero(t, w.Body.Len())

	w = s.do(t, http.MethodGet, "/api/Admin/ExportToExcel?group=Group1", s.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/Admin/ExportJobDetailsToExcel?searchTerm=1001", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="JobDetails.xlsx"`, w.Header().Get("Content-Disposition"))

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/Admin", s.userToken, nil).Code)
	w = s.do(t, http.MethodGet, "/api/Admin", s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []user.UserResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &users))
	assert.Len(t, users, 2)
}
