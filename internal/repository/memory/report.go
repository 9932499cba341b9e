package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
)

type reportRepositoryImpl struct {
	store *Store
}

func NewReportRepository(store *Store) report.ReportRepository {
	return &reportRepositoryImpl{store: store}
}

func (r *reportRepositoryImpl) ListTimesheetRows(ctx context.Context, filter report.TimesheetFilter) ([]report.TimesheetRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	type keyed struct {
		row report.TimesheetRow
		id  int64
	}

	rows := make([]keyed, 0)
	for _, e := range r.store.taskEntries {
		if e.AppUserID == nil {
			continue
		}
		u, ok := r.store.users[*e.AppUserID]
		if !ok || u.Group == nil || *u.Group != filter.Group {
			continue
		}
		if filter.From != nil && (e.Date == nil || e.Date.Before(*filter.From)) {
			continue
		}
		if filter.To != nil && (e.Date == nil || !e.Date.Before(*filter.To)) {
			continue
		}

		row := report.TimesheetRow{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Group:     *u.Group,
			Date:      e.Date,
			Duration:  e.Duration,
		}
		if e.JobID != nil {
			if j, ok := r.store.jobs[*e.JobID]; ok {
				row.JobDisplay = j.JobNumberAndJobName
			}
		}
		if e.TaskName != nil {
			row.TaskName = *e.TaskName
		}
		if e.Comment != nil {
			row.Comment = *e.Comment
		}
		rows = append(rows, keyed{row: row, id: e.ID})
	}

	sort.Slice(rows, func(i, j int) bool {
		di, dj := dateOf(rows[i].row.Date), dateOf(rows[j].row.Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if rows[i].row.LastName != rows[j].row.LastName {
			return rows[i].row.LastName < rows[j].row.LastName
		}
		return rows[i].id < rows[j].id
	})

	result := make([]report.TimesheetRow, len(rows))
	for i, k := range rows {
		result[i] = k.row
	}
	return result, nil
}
