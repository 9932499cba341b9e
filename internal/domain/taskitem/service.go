package taskitem

import "context"

type TaskItemService interface {
	List(ctx context.Context) ([]TaskItem, error)
	Get(ctx context.Context, id int64) (TaskItem, error)
	Create(ctx context.Context, req TaskItemRequest) (TaskItem, error)
	Update(ctx context.Context, id int64, req TaskItemRequest) (TaskItem, error)
	Delete(ctx context.Context, id int64) error
}
