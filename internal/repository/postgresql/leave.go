package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.RequestRepository {
	return &leaveRepository{db: db}
}

// Create implements leave.RequestRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.RequestRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.RequestRepository.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id, status string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id, status).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
		&req.CreatedAt, &req.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return req, nil
}

// ListByEmployee implements leave.RequestRepository.
func (l *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]leave.Request, int, error) {
	q := GetQuerier(ctx, l.db)

	var total int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE employee_id = $1`,
		employeeID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason, status, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY start_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests, err := scanLeaveRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListByStatus implements leave.RequestRepository.
func (l *leaveRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]leave.Request, int, error) {
	q := GetQuerier(ctx, l.db)

	var total int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = $1`,
		status,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.created_at, lr.updated_at,
			   CONCAT(er.first_name, ' ', er.last_name) AS employee_name
		FROM leave_requests lr
		JOIN employee_register er ON er.id = lr.employee_id
		WHERE lr.status = $1
		ORDER BY lr.created_at ASC, lr.id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, total, nil
}

// ListApprovedIntervals implements leave.RequestRepository.
func (l *leaveRepository) ListApprovedIntervals(ctx context.Context, employeeID string, year int, month time.Month) ([]leave.Interval, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'Approved'
		  AND start_date < $3
		  AND end_date >= $2
		ORDER BY start_date ASC, id ASC
	`

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	rows, err := q.Query(ctx, query, employeeID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave intervals: %w", err)
	}
	defer rows.Close()

	var intervals []leave.Interval
	for rows.Next() {
		var iv leave.Interval
		if err := rows.Scan(&iv.ID, &iv.EmployeeID, &iv.LeaveType, &iv.StartDate, &iv.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan leave interval: %w", err)
		}
		intervals = append(intervals, iv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave intervals: %w", err)
	}

	return intervals, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status,
			&req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, nil
}
