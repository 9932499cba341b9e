package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dayEntryRepositoryImpl struct {
	db *database.DB
}

func NewDayEntryRepository(db *database.DB) dayentry.DayEntryRepository {
	return &dayEntryRepositoryImpl{db: db}
}

const dayEntryColumns = `id, app_user_id, week_of, date, day_name, day_start_time, day_end_time,
	lunch_start_time, lunch_end_time, day_duration, lunch_duration, work_duration, comment, status`

func scanDayEntry(row pgx.Row) (dayentry.DayEntry, error) {
	var e dayentry.DayEntry
	err := row.Scan(
		&e.ID,
		&e.AppUserID,
		&e.WeekOf,
		&e.Date,
		&e.DayName,
		&e.DayStartTime,
		&e.DayEndTime,
		&e.LunchStartTime,
		&e.LunchEndTime,
		&e.DayDuration,
		&e.LunchDuration,
		&e.WorkDuration,
		&e.Comment,
		&e.Status,
	)
	return e, err
}

// Create implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) Create(ctx context.Context, entry dayentry.DayEntry) (dayentry.DayEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_entries (
			app_user_id, week_of, date, day_name, day_start_time, day_end_time,
			lunch_start_time, lunch_end_time, day_duration, lunch_duration, work_duration, comment, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + dayEntryColumns

	created, err := scanDayEntry(q.QueryRow(ctx, query,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.DayStartTime,
		entry.DayEndTime,
		entry.LunchStartTime,
		entry.LunchEndTime,
		entry.DayDuration,
		entry.LunchDuration,
		entry.WorkDuration,
		entry.Comment,
		entry.Status,
	))
	if err != nil {
		return dayentry.DayEntry{}, fmt.Errorf("failed to create day entry: %w", err)
	}
	return created, nil
}

// GetByID implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (dayentry.DayEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayEntryColumns + ` FROM day_entries WHERE id = $1`

	e, err := scanDayEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dayentry.DayEntry{}, dayentry.ErrDayEntryNotFound
		}
		return dayentry.DayEntry{}, fmt.Errorf("failed to get day entry by id %d: %w", id, err)
	}
	return e, nil
}

// Update implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) Update(ctx context.Context, entry dayentry.DayEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE day_entries SET
			app_user_id = $2, week_of = $3, date = $4, day_name = $5,
			day_start_time = $6, day_end_time = $7, lunch_start_time = $8, lunch_end_time = $9,
			day_duration = $10, lunch_duration = $11, work_duration = $12, comment = $13, status = $14
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.DayStartTime,
		entry.DayEndTime,
		entry.LunchStartTime,
		entry.LunchEndTime,
		entry.DayDuration,
		entry.LunchDuration,
		entry.WorkDuration,
		entry.Comment,
		entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update day entry %d: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return dayentry.ErrDayEntryNotFound
	}
	return nil
}

// Delete implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM day_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete day entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return dayentry.ErrDayEntryNotFound
	}
	return nil
}

// DeleteByDateAndUser implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) DeleteByDateAndUser(ctx context.Context, date time.Time, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM day_entries WHERE date = $1 AND app_user_id = $2`, date, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete day entries by date: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByUserAndWeek implements dayentry.DayEntryRepository.
func (r *dayEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]dayentry.DayEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dayEntryColumns + `
		FROM day_entries
		WHERE app_user_id = $1 AND week_of = $2
		ORDER BY date, id`

	rows, err := q.Query(ctx, query, userID, weekOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list day entries: %w", err)
	}
	defer rows.Close()

	entries := make([]dayentry.DayEntry, 0)
	for rows.Next() {
		e, err := scanDayEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}
