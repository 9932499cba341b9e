package taskitem

import "errors"

var (
	ErrTaskItemNotFound        = errors.New("task item not found")
	ErrTaskDescriptionRequired = errors.New("task description is required")
)
