package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO non_working_days (id, date, description)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newHoliday.ID,
		newHoliday.Date,
		newHoliday.Description,
	).Scan(&newHoliday.CreatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return newHoliday, nil
}

// Delete implements holiday.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM non_working_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// ListByMonth implements holiday.HolidayRepository.
func (h *holidayRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date, description, created_at
		FROM non_working_days
		WHERE date >= $1 AND date < $2
		ORDER BY date ASC, id ASC
	`

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hol holiday.Holiday
		if err := rows.Scan(&hol.ID, &hol.Date, &hol.Description, &hol.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}

// ListDuplicateDates implements holiday.HolidayRepository.
func (h *holidayRepository) ListDuplicateDates(ctx context.Context) ([]time.Time, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT date
		FROM non_working_days
		GROUP BY date
		HAVING COUNT(*) > 1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list duplicate holiday dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan holiday date: %w", err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read duplicate holiday dates: %w", err)
	}

	return dates, nil
}
