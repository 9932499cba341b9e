package taskitem

// TaskItem is a selectable task description in the admin-managed catalog.
type TaskItem struct {
	ID              int64  `json:"id"`
	TaskDescription string `json:"task_description"`
}
