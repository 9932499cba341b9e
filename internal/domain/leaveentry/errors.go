package leaveentry

import "errors"

var (
	ErrLeaveEntryRequired = errors.New("leave entry is required")
	ErrLeaveEntryNotFound = errors.New("leave entry not found")
)
