package report

import "errors"

var (
	ErrGroupRequired      = errors.New("group is required")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrSearchTermRequired = errors.New("search term is required")
)
