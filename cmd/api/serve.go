package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/oauth"
	authService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/dashboard"
	dayEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/dayentry"
	jobService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/job"
	leaveEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/leaveentry"
	reportService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/service/seed"
	taskEntryService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/taskentry"
	taskItemService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/taskitem"
	userService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/user"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

var (
	serveMigrate bool
	serveSeed    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the job sync scheduler",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply pending migrations before serving (postgres only)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "Create the default accounts before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	if serveMigrate && repos.db != nil {
		if _, err := repos.db.Migrate(ctx); err != nil {
			return err
		}
	}
	if serveSeed {
		if _, err := seed.NewSeeder(repos.users).SeedUsers(ctx); err != nil {
			return err
		}
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := authService.NewAuthService(repos.users, JWTService)
	userSvc := userService.NewUserService(repos.users)
	dashboardSvc := dashboardService.NewDashboardService(repos.users, repos.dayEntries, repos.taskEntries, repos.leaveEntries, repos.jobs, repos.taskItems)
	dayEntrySvc := dayEntryService.NewDayEntryService(repos.dayEntries)
	taskEntrySvc := taskEntryService.NewTaskEntryService(repos.taskEntries)
	leaveEntrySvc := leaveEntryService.NewLeaveEntryService(repos.leaveEntries)
	jobSvc := jobService.NewJobService(repos.tx, repos.jobs)
	taskItemSvc := taskItemService.NewTaskItemService(repos.taskItems)
	reportSvc := reportService.NewReportService(repos.users, repos.taskEntries, repos.leaveEntries, repos.jobs, repos.reports)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: []string{cfg.App.FrontendURL},
		GoogleLogin:    googleService != nil,
	}, JWTService, appHTTP.Handlers{
		Account:   appHTTP.NewAccountHandler(authSvc, googleService, cfg.App.FrontendURL),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc, dayEntrySvc, taskEntrySvc, leaveEntrySvc, jobSvc, reportSvc),
		Job:       appHTTP.NewJobHandler(jobSvc),
		Task:      appHTTP.NewTaskHandler(taskItemSvc),
		Admin:     appHTTP.NewAdminHandler(userSvc, jobSvc, reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewJobCatalogJobs(jobSvc, cfg.Jobs.SyncInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", "http://localhost"+server.Addr, "storage", cfg.Storage.Type)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
