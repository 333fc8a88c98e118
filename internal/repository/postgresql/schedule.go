package postgresql

import (
	"context"
	"fmt"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/schedule"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Upsert implements schedule.ScheduleRepository.
func (s *scheduleRepository) Upsert(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO employee_schedule (
			id, employee_id, shift_type, schedule_date, start_time, end_time
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (employee_id, schedule_date) DO UPDATE
		SET shift_type = EXCLUDED.shift_type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sched.ID,
		sched.EmployeeID,
		sched.ShiftType,
		sched.ScheduleDate,
		sched.StartTime,
		sched.EndTime,
	).Scan(&sched.ID, &sched.CreatedAt, &sched.UpdatedAt)

	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to upsert schedule: %w", err)
	}

	return sched, nil
}

// GetLatestByEmployee implements schedule.ScheduleRepository.
func (s *scheduleRepository) GetLatestByEmployee(ctx context.Context, employeeID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, shift_type, schedule_date, start_time, end_time, created_at, updated_at
		FROM employee_schedule
		WHERE employee_id = $1
		ORDER BY schedule_date DESC, created_at DESC
		LIMIT 1
	`

	var sched schedule.Schedule
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&sched.ID, &sched.EmployeeID, &sched.ShiftType,
		&sched.ScheduleDate, &sched.StartTime, &sched.EndTime,
		&sched.CreatedAt, &sched.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get latest schedule: %w", err)
	}

	return sched, nil
}

// ListLatestPerEmployee implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListLatestPerEmployee(ctx context.Context, search string, limit, offset int) ([]schedule.Schedule, int, error) {
	q := GetQuerier(ctx, s.db)

	pattern := "%" + search + "%"

	var total int
	err := q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT es.employee_id)
		FROM employee_schedule es
		JOIN employee_register er ON er.id = es.employee_id
		WHERE $1 = '%%' OR CONCAT(er.first_name, ' ', er.last_name) ILIKE $1 OR er.department ILIKE $1
	`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count schedules: %w", err)
	}

	query := `
		SELECT DISTINCT ON (es.employee_id)
			   es.id, es.employee_id, es.shift_type, es.schedule_date,
			   es.start_time, es.end_time, es.created_at, es.updated_at,
			   CONCAT(er.first_name, ' ', er.last_name) AS employee_name,
			   er.department
		FROM employee_schedule es
		JOIN employee_register er ON er.id = es.employee_id
		WHERE $1 = '%%' OR CONCAT(er.first_name, ' ', er.last_name) ILIKE $1 OR er.department ILIKE $1
		ORDER BY es.employee_id, es.schedule_date DESC, es.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var sched schedule.Schedule
		if err := rows.Scan(
			&sched.ID, &sched.EmployeeID, &sched.ShiftType,
			&sched.ScheduleDate, &sched.StartTime, &sched.EndTime,
			&sched.CreatedAt, &sched.UpdatedAt,
			&sched.EmployeeName, &sched.Department,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sched)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read schedules: %w", err)
	}

	return schedules, total, nil
}
