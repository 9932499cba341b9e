package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskItemRepositoryImpl struct {
	db *database.DB
}

func NewTaskItemRepository(db *database.DB) taskitem.TaskItemRepository {
	return &taskItemRepositoryImpl{db: db}
}

// List implements taskitem.TaskItemRepository.
func (r *taskItemRepositoryImpl) List(ctx context.Context) ([]taskitem.TaskItem, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, task_description FROM task_items ORDER BY task_description, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list task items: %w", err)
	}
	defer rows.Close()

	items := make([]taskitem.TaskItem, 0)
	for rows.Next() {
		var item taskitem.TaskItem
		if err := rows.Scan(&item.ID, &item.TaskDescription); err != nil {
			return nil, fmt.Errorf("failed to scan task item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

// GetByID implements taskitem.TaskItemRepository.
func (r *taskItemRepositoryImpl) GetByID(ctx context.Context, id int64) (taskitem.TaskItem, error) {
	q := GetQuerier(ctx, r.db)

	var item taskitem.TaskItem
	err := q.QueryRow(ctx, `SELECT id, task_description FROM task_items WHERE id = $1`, id).Scan(&item.ID, &item.TaskDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taskitem.TaskItem{}, taskitem.ErrTaskItemNotFound
		}
		return taskitem.TaskItem{}, fmt.Errorf("failed to get task item by id %d: %w", id, err)
	}
	return item, nil
}

// Create implements taskitem.TaskItemRepository.
func (r *taskItemRepositoryImpl) Create(ctx context.Context, item taskitem.TaskItem) (taskitem.TaskItem, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `INSERT INTO task_items (task_description) VALUES ($1) RETURNING id`, item.TaskDescription).Scan(&item.ID)
	if err != nil {
		return taskitem.TaskItem{}, fmt.Errorf("failed to create task item: %w", err)
	}
	return item, nil
}

// Update implements taskitem.TaskItemRepository.
func (r *taskItemRepositoryImpl) Update(ctx context.Context, item taskitem.TaskItem) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE task_items SET task_description = $2 WHERE id = $1`, item.ID, item.TaskDescription)
	if err != nil {
		return fmt.Errorf("failed to update task item %d: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return taskitem.ErrTaskItemNotFound
	}
	return nil
}

// Delete implements taskitem.TaskItemRepository.
func (r *taskItemRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM task_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return taskitem.ErrTaskItemNotFound
	}
	return nil
}
