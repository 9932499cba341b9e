package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
)

type taskItemRepositoryImpl struct {
	store *Store
}

func NewTaskItemRepository(store *Store) taskitem.TaskItemRepository {
	return &taskItemRepositoryImpl{store: store}
}

func (r *taskItemRepositoryImpl) List(ctx context.Context) ([]taskitem.TaskItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]taskitem.TaskItem, 0, len(r.store.taskItems))
	for _, item := range r.store.taskItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].TaskDescription != items[j].TaskDescription {
			return items[i].TaskDescription < items[j].TaskDescription
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *taskItemRepositoryImpl) GetByID(ctx context.Context, id int64) (taskitem.TaskItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.taskItems[id]
	if !ok {
		return taskitem.TaskItem{}, taskitem.ErrTaskItemNotFound
	}
	return item, nil
}

func (r *taskItemRepositoryImpl) Create(ctx context.Context, item taskitem.TaskItem) (taskitem.TaskItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID("task_items")
	r.store.taskItems[item.ID] = item
	return item, nil
}

func (r *taskItemRepositoryImpl) Update(ctx context.Context, item taskitem.TaskItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.taskItems[item.ID]; !ok {
		return taskitem.ErrTaskItemNotFound
	}
	r.store.taskItems[item.ID] = item
	return nil
}

func (r *taskItemRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.taskItems[id]; !ok {
		return taskitem.ErrTaskItemNotFound
	}
	delete(r.store.taskItems, id)
	return nil
}
