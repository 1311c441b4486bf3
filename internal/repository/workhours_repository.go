package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"teamhours-be/internal/entities"
)

// WorkHoursRepository defines the interface for work-hour entry database operations
type WorkHoursRepository interface {
	Create(userID string, start, end time.Time, summary *string, timezone, totalHours string) (*entities.WorkHour, error)
	ListByMonth(userID string, year int, month time.Month) ([]*entities.WorkHour, error)
	UpdateSummary(id int64, summary *string) (*entities.WorkHour, error)
}

type workHoursRepository struct {
	db *sql.DB
}

// NewWorkHoursRepository creates a new work-hours repository
func NewWorkHoursRepository(db *sql.DB) WorkHoursRepository {
	return &workHoursRepository{db: db}
}

const workHourColumns = `id, user_id, start_time, end_time, summary, timezone, total_hours, created_at, updated_at`

func scanWorkHour(row *sql.Row) (*entities.WorkHour, error) {
	var wh entities.WorkHour
	err := row.Scan(
		&wh.ID,
		&wh.UserID,
		&wh.StartTime,
		&wh.EndTime,
		&wh.Summary,
		&wh.Timezone,
		&wh.TotalHours,
		&wh.CreatedAt,
		&wh.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work hour: %w", err)
	}
	return &wh, nil
}

// Create inserts a new work-hour entry. Timestamps are stored in UTC; the
// original zone is kept in the timezone column.
func (r *workHoursRepository) Create(userID string, start, end time.Time, summary *string, timezone, totalHours string) (*entities.WorkHour, error) {
	query := `
		INSERT INTO work_hours (user_id, start_time, end_time, summary, timezone, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + workHourColumns

	wh, err := scanWorkHour(r.db.QueryRow(query, userID, start.UTC(), end.UTC(), summary, timezone, totalHours))
	if err != nil {
		return nil, fmt.Errorf("failed to create work hour: %w", err)
	}
	return wh, nil
}

// ListByMonth returns the user's entries whose start falls in the given
// calendar year and month, newest entry id first. Soft-deleted rows are
// excluded so historical report queries stay intact.
func (r *workHoursRepository) ListByMonth(userID string, year int, month time.Month) ([]*entities.WorkHour, error) {
	query := `
		SELECT ` + workHourColumns + `
		FROM work_hours
		WHERE user_id = $1
		AND EXTRACT(YEAR FROM start_time AT TIME ZONE 'UTC') = $2
		AND EXTRACT(MONTH FROM start_time AT TIME ZONE 'UTC') = $3
		AND deleted_at IS NULL
		ORDER BY id DESC
	`

	rows, err := r.db.Query(query, userID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list work hours: %w", err)
	}
	defer rows.Close()

	var workHours []*entities.WorkHour
	for rows.Next() {
		var wh entities.WorkHour
		err := rows.Scan(
			&wh.ID,
			&wh.UserID,
			&wh.StartTime,
			&wh.EndTime,
			&wh.Summary,
			&wh.Timezone,
			&wh.TotalHours,
			&wh.CreatedAt,
			&wh.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work hour: %w", err)
		}
		workHours = append(workHours, &wh)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work hours: %w", err)
	}

	return workHours, nil
}

// UpdateSummary overwrites the summary of an existing entry. A nil summary
// clears it. Start, end and total_hours are never touched here.
func (r *workHoursRepository) UpdateSummary(id int64, summary *string) (*entities.WorkHour, error) {
	query := `
		UPDATE work_hours
		SET summary = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING ` + workHourColumns

	return scanWorkHour(r.db.QueryRow(query, summary, id))
}
