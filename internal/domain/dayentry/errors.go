package dayentry

import "errors"

var (
	ErrDayEntryRequired = errors.New("day entry is required")
	ErrDayEntryNotFound = errors.New("day entry not found")
)
