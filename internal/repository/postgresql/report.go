package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// ListTimesheetRows retrieves task entries for every user in a group, optionally bounded by date.
func (r *reportRepositoryImpl) ListTimesheetRows(ctx context.Context, filter report.TimesheetFilter) ([]report.TimesheetRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			u.first_name,
			u.last_name,
			u.email,
			COALESCE(u.group_name, ''),
			te.date,
			COALESCE(j.job_number_and_job_name, ''),
			COALESCE(te.task_name, ''),
			te.duration,
			COALESCE(te.comment, '')
		FROM task_entries te
		JOIN users u ON u.id = te.app_user_id
		LEFT JOIN jobs j ON j.id = te.job_id
		WHERE u.group_name = $1`

	args := []interface{}{filter.Group}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND te.date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND te.date < $%d", len(args))
	}
	query += " ORDER BY te.date, u.last_name, te.id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timesheet rows: %w", err)
	}
	defer rows.Close()

	result := make([]report.TimesheetRow, 0)
	for rows.Next() {
		var row report.TimesheetRow
		err := rows.Scan(
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.Group,
			&row.Date,
			&row.JobDisplay,
			&row.TaskName,
			&row.Duration,
			&row.Comment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return result, nil
}
