package taskentry

import "errors"

var (
	ErrTaskEntryRequired = errors.New("task entry is required")
	ErrTaskEntryNotFound = errors.New("task entry not found")
)
