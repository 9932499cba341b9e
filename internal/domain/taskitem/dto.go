package taskitem

import (
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type TaskItemRequest struct {
	TaskDescription string `json:"task_description"`
}

func (r *TaskItemRequest) Validate() error {
	if validator.IsEmpty(r.TaskDescription) {
		return ErrTaskDescriptionRequired
	}
	r.TaskDescription = strings.TrimSpace(r.TaskDescription)
	return nil
}
