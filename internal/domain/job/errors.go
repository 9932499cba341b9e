package job

import "errors"

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrJobFieldsRequired    = errors.New("job name and number are required")
	ErrJobNumberExists      = errors.New("a job with the same job number already exists")
	ErrJobHasTaskEntries    = errors.New("job has associated task entries")
	ErrJobIDMismatch        = errors.New("job id in path does not match payload")
	ErrImportFileRequired   = errors.New("import file is required")
	ErrImportFileUnreadable = errors.New("import file is not valid CSV")
)
