package http

import (
	"log/slog"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	GoogleLogin    bool
}

type Handlers struct {
	Account   AccountHandler
	Dashboard DashboardHandler
	Job       JobHandler
	Task      TaskHandler
	Admin     AdminHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/Account", func(r chi.Router) {
			r.Post("/Login", h.Account.Login)
			r.Post("/Register", h.Account.Register)
			r.Post("/Logout", h.Account.Logout)
			if opts.GoogleLogin {
				r.Get("/Login/Google", h.Account.LoginWithGoogle)
				r.Get("/OAuth/Callback/Google", h.Account.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/Dashboard", func(r chi.Router) {
				r.Get("/Index", h.Dashboard.Index)
				r.Post("/ClockInOut", h.Dashboard.ClockInOut)
				r.Post("/AddTaskEntry", h.Dashboard.AddTaskEntry)
				r.Delete("/DeleteTaskEntry/{id}", h.Dashboard.DeleteTaskEntry)
				r.Post("/AddLeave", h.Dashboard.AddLeave)
				r.Delete("/DeleteLeave/{id}", h.Dashboard.DeleteLeave)
				r.Delete("/DeleteDay/{id}", h.Dashboard.DeleteDay)
				r.Delete("/DeleteDayEntries", h.Dashboard.DeleteDayEntries)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/AddJob", h.Dashboard.AddJob)
					r.Get("/ExportTimeSheet", h.Dashboard.ExportTimeSheet)
				})
			})

			r.Route("/Jobs", func(r chi.Router) {
				r.Get("/", h.Job.List)
				r.Get("/{id}", h.Job.Get)
				r.Get("/Details/{jobNumber}", h.Job.Details)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", h.Job.Update)
					r.Delete("/{id}", h.Job.Delete)
					r.Post("/Import", h.Job.Import)
					r.Post("/Sync", h.Job.Sync)
				})
			})

			r.Route("/Tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Task.Create)
					r.Put("/{id}", h.Task.Update)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/Admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Admin.Users)
				r.Get("/ExportToExcel", h.Admin.ExportToExcel)
				r.Get("/ExportJobDetailsToExcel", h.Admin.ExportJobDetailsToExcel)
				r.Get("/JobDetails", h.Admin.JobDetails)
			})
		})
	})
	return r
}
