package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/cached"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
)

// repositories bundles one storage backend.
type repositories struct {
	tx           database.Transactor
	users        user.UserRepository
	dayEntries   dayentry.DayEntryRepository
	taskEntries  taskentry.TaskEntryRepository
	leaveEntries leaveentry.LeaveEntryRepository
	jobs         job.JobRepository
	taskItems    taskitem.TaskItemRepository
	reports      report.ReportRepository

	db      *database.DB
	closers []func()
}

func (r *repositories) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// openRepositories builds the repositories for APP_STORAGE and wraps the catalogs with the
// redis cache when REDIS_HOST is set.
func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	repos := &repositories{}

	switch cfg.Storage.Type {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		repos.tx = store
		repos.users = memory.NewUserRepository(store)
		repos.dayEntries = memory.NewDayEntryRepository(store)
		repos.taskEntries = memory.NewTaskEntryRepository(store)
		repos.leaveEntries = memory.NewLeaveEntryRepository(store)
		repos.jobs = memory.NewJobRepository(store)
		repos.taskItems = memory.NewTaskItemRepository(store)
		repos.reports = memory.NewReportRepository(store)
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		repos.db = db
		repos.closers = append(repos.closers, db.Close)
		repos.tx = postgresql.NewTransactor(db)
		repos.users = postgresql.NewUserRepository(db)
		repos.dayEntries = postgresql.NewDayEntryRepository(db)
		repos.taskEntries = postgresql.NewTaskEntryRepository(db)
		repos.leaveEntries = postgresql.NewLeaveEntryRepository(db)
		repos.jobs = postgresql.NewJobRepository(db)
		repos.taskItems = postgresql.NewTaskItemRepository(db)
		repos.reports = postgresql.NewReportRepository(db)
	}

	if addr := cfg.RedisAddr(); addr != "" {
		client, err := cache.NewRedisClient(ctx, addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			repos.Close()
			return nil, err
		}
		repos.closers = append(repos.closers, func() { _ = client.Close() })

		c := cache.NewRedisCache(client, appName+":")
		repos.jobs = cached.NewJobRepository(repos.jobs, c, cfg.Redis.TTL)
		repos.taskItems = cached.NewTaskItemRepository(repos.taskItems, c, cfg.Redis.TTL)
		slog.Info("Catalog cache enabled", "addr", addr, "ttl", cfg.Redis.TTL)
	}

	return repos, nil
}
