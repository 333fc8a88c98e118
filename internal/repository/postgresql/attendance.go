package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.RecordRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_log (
			id, employee_id, log_date, time_in, time_out, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.RecordRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, log_date, time_in, time_out, status, created_at, updated_at
		FROM attendance_log
		WHERE id = $1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date,
		&record.TimeIn, &record.TimeOut, &record.Status,
		&record.CreatedAt, &record.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	return record, nil
}

// Update implements attendance.RecordRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_log
		SET time_in = $2, time_out = $3, status = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.TimeIn,
		record.TimeOut,
		record.Status,
	).Scan(&record.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance log: %w", err)
	}

	return record, nil
}

// ListByEmployeeAndMonth implements attendance.RecordRepository.
func (a *attendanceRepository) ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, log_date, time_in, time_out, status, created_at, updated_at
		FROM attendance_log
		WHERE employee_id = $1
		  AND log_date >= $2
		  AND log_date < $3
		ORDER BY log_date ASC, created_at ASC
	`

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, employeeID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date,
			&record.TimeIn, &record.TimeOut, &record.Status,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance logs: %w", err)
	}

	return records, nil
}
