package taskitem

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
)

type TaskItemServiceImpl struct {
	taskitem.TaskItemRepository
}

func NewTaskItemService(taskItemRepository taskitem.TaskItemRepository) taskitem.TaskItemService {
	return &TaskItemServiceImpl{TaskItemRepository: taskItemRepository}
}

// List implements taskitem.TaskItemService.
func (s *TaskItemServiceImpl) List(ctx context.Context) ([]taskitem.TaskItem, error) {
	return s.TaskItemRepository.List(ctx)
}

// Get implements taskitem.TaskItemService.
func (s *TaskItemServiceImpl) Get(ctx context.Context, id int64) (taskitem.TaskItem, error) {
	return s.TaskItemRepository.GetByID(ctx, id)
}

// Create implements taskitem.TaskItemService.
func (s *TaskItemServiceImpl) Create(ctx context.Context, req taskitem.TaskItemRequest) (taskitem.TaskItem, error) {
	if err := req.Validate(); err != nil {
		return taskitem.TaskItem{}, err
	}
	return s.TaskItemRepository.Create(ctx, taskitem.TaskItem{TaskDescription: req.TaskDescription})
}

// Update implements taskitem.TaskItemService.
func (s *TaskItemServiceImpl) Update(ctx context.Context, id int64, req taskitem.TaskItemRequest) (taskitem.TaskItem, error) {
	if err := req.Validate(); err != nil {
		return taskitem.TaskItem{}, err
	}

	item, err := s.TaskItemRepository.GetByID(ctx, id)
	if err != nil {
		return taskitem.TaskItem{}, err
	}
	item.TaskDescription = req.TaskDescription

	if err := s.TaskItemRepository.Update(ctx, item); err != nil {
		return taskitem.TaskItem{}, err
	}
	return item, nil
}

// Delete implements taskitem.TaskItemService.
func (s *TaskItemServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.TaskItemRepository.Delete(ctx, id)
}
