package taskitem

import "context"

type TaskItemRepository interface {
	List(ctx context.Context) ([]TaskItem, error)
	GetByID(ctx context.Context, id int64) (TaskItem, error)
	Create(ctx context.Context, item TaskItem) (TaskItem, error)
	Update(ctx context.Context, item TaskItem) error
	Delete(ctx context.Context, id int64) error
}
