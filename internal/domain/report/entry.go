package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
)

// Entry is either a TaskLine or a LeaveLine.
type Entry interface {
	EntryDate() time.Time
	isEntry()
}

type TaskLine struct {
	taskentry.TaskEntry
}

func (l TaskLine) EntryDate() time.Time { return dateOrZero(l.Date) }
func (TaskLine) isEntry() {}

type LeaveLine struct {
	leaveentry.LeaveEntry
}

func (l LeaveLine) EntryDate() time.Time { return dateOrZero(l.Date) }
func (LeaveLine) isEntry() {}

// MergeByDate interleaves task and leave entries ordered by date.
// Task entries come first among entries sharing a date.
func MergeByDate(tasks []taskentry.TaskEntry, leaves []leaveentry.LeaveEntry) []Entry {
	out := make([]Entry, 0, len(tasks)+len(leaves))
	for _, t := range tasks {
		out = append(out, TaskLine{TaskEntry: t})
	}
	for _, l := range leaves {
		out = append(out, LeaveLine{LeaveEntry: l})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EntryDate().Before(out[j].EntryDate())
	})
	return out
}

func dateOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
