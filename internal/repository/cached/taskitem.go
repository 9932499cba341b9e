package cached

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

const taskItemsAllKey = "task_items:all"

type taskItemRepository struct {
	taskitem.TaskItemRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewTaskItemRepository(inner taskitem.TaskItemRepository, c cache.Cache, ttl time.Duration) taskitem.TaskItemRepository {
	return &taskItemRepository{TaskItemRepository: inner, cache: c, ttl: ttl}
}

func (r *taskItemRepository) List(ctx context.Context) ([]taskitem.TaskItem, error) {
	if database.InTransaction(ctx) {
		return r.TaskItemRepository.List(ctx)
	}

	var items []taskitem.TaskItem
	hit, err := r.cache.Get(ctx, taskItemsAllKey, &items)
	if err != nil {
		slog.Warn("Cache read failed", "key", taskItemsAllKey, "error", err)
	}
	if hit {
		return items, nil
	}

	items, err = r.TaskItemRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, taskItemsAllKey, items, r.ttl); err != nil {
		slog.Warn("Cache write failed", "key", taskItemsAllKey, "error", err)
	}
	return items, nil
}

func (r *taskItemRepository) Create(ctx context.Context, item taskitem.TaskItem) (taskitem.TaskItem, error) {
	created, err := r.TaskItemRepository.Create(ctx, item)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *taskItemRepository) Update(ctx context.Context, item taskitem.TaskItem) error {
	err := r.TaskItemRepository.Update(ctx, item)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *taskItemRepository) Delete(ctx context.Context, id int64) error {
	err := r.TaskItemRepository.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *taskItemRepository) invalidate(ctx context.Context) {
	database.AfterCommit(ctx, func(ctx context.Context) {
		if err := r.cache.Delete(ctx, taskItemsAllKey); err != nil {
			slog.Warn("Cache invalidation failed", "key", taskItemsAllKey, "error", err)
		}
	})
}
