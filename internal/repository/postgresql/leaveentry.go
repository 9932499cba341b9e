package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveEntryRepositoryImpl struct {
	db *database.DB
}

func NewLeaveEntryRepository(db *database.DB) leaveentry.LeaveEntryRepository {
	return &leaveEntryRepositoryImpl{db: db}
}

const leaveEntryColumns = `id, app_user_id, week_of, date, day_name, leave_type, leave_duration, status`

func scanLeaveEntry(row pgx.Row) (leaveentry.LeaveEntry, error) {
	var e leaveentry.LeaveEntry
	err := row.Scan(
		&e.ID,
		&e.AppUserID,
		&e.WeekOf,
		&e.Date,
		&e.DayName,
		&e.LeaveType,
		&e.LeaveDuration,
		&e.Status,
	)
	return e, err
}

func (r *leaveEntryRepositoryImpl) queryEntries(ctx context.Context, query string, args ...interface{}) ([]leaveentry.LeaveEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave entries: %w", err)
	}
	defer rows.Close()

	entries := make([]leaveentry.LeaveEntry, 0)
	for rows.Next() {
		e, err := scanLeaveEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

// Create implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) Create(ctx context.Context, entry leaveentry.LeaveEntry) (leaveentry.LeaveEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_entries (app_user_id, week_of, date, day_name, leave_type, leave_duration, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveEntryColumns

	created, err := scanLeaveEntry(q.QueryRow(ctx, query,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.LeaveType,
		entry.LeaveDuration,
		entry.Status,
	))
	if err != nil {
		return leaveentry.LeaveEntry{}, fmt.Errorf("failed to create leave entry: %w", err)
	}
	return created, nil
}

// GetByID implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (leaveentry.LeaveEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanLeaveEntry(q.QueryRow(ctx, `SELECT `+leaveEntryColumns+` FROM leave_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leaveentry.LeaveEntry{}, leaveentry.ErrLeaveEntryNotFound
		}
		return leaveentry.LeaveEntry{}, fmt.Errorf("failed to get leave entry by id %d: %w", id, err)
	}
	return e, nil
}

// Update implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) Update(ctx context.Context, entry leaveentry.LeaveEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_entries SET
			app_user_id = $2, week_of = $3, date = $4, day_name = $5,
			leave_type = $6, leave_duration = $7, status = $8
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.LeaveType,
		entry.LeaveDuration,
		entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave entry %d: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return leaveentry.ErrLeaveEntryNotFound
	}
	return nil
}

// Delete implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leaveentry.ErrLeaveEntryNotFound
	}
	return nil
}

// ListByUserAndWeek implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]leaveentry.LeaveEntry, error) {
	return r.queryEntries(ctx, `SELECT `+leaveEntryColumns+`
		FROM leave_entries
		WHERE app_user_id = $1 AND week_of = $2
		ORDER BY date, id`, userID, weekOf)
}

// ListByUserInRange implements leaveentry.LeaveEntryRepository.
func (r *leaveEntryRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]leaveentry.LeaveEntry, error) {
	return r.queryEntries(ctx, `SELECT `+leaveEntryColumns+`
		FROM leave_entries
		WHERE app_user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, id`, userID, from, to)
}
