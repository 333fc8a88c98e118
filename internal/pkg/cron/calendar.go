package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
)

// CalendarJobs checks the holiday calendar and approved leaves for
// ambiguities. Reconciliation resolves both deterministically (first holiday
// wins, later leave wins) but supervisors should clean the data up.
type CalendarJobs struct {
	holidayRepo holiday.HolidayRepository
	db          *database.DB
}

func NewCalendarJobs(holidayRepo holiday.HolidayRepository, db *database.DB) *CalendarJobs {
	return &CalendarJobs{
		holidayRepo: holidayRepo,
		db:          db,
	}
}

func (j *CalendarJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("calendar_integrity_check", 6*time.Hour, j.CheckCalendarIntegrity)
}

func (j *CalendarJobs) CheckCalendarIntegrity(ctx context.Context) error {
	slog.Info("Cron: Starting calendar integrity check")

	dates, err := j.holidayRepo.ListDuplicateDates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list duplicate holiday dates: %w", err)
	}

	for _, date := range dates {
		slog.Warn("Cron: Duplicate holiday rows for date, first row wins during reconciliation",
			"date", date.Format(time.DateOnly))
	}

	overlaps, err := j.listOverlappingLeaves(ctx)
	if err != nil {
		return fmt.Errorf("failed to list overlapping leaves: %w", err)
	}

	for _, o := range overlaps {
		slog.Warn("Cron: Overlapping approved leaves for employee, later request wins per day",
			"employee_id", o.EmployeeID,
			"leave_id", o.FirstID,
			"overlapping_leave_id", o.SecondID)
	}

	slog.Info("Cron: Calendar integrity check completed",
		"duplicate_holiday_dates", len(dates),
		"overlapping_leave_pairs", len(overlaps))
	return nil
}

type leaveOverlap struct {
	EmployeeID string
	FirstID    string
	SecondID   string
}

func (j *CalendarJobs) listOverlappingLeaves(ctx context.Context) ([]leaveOverlap, error) {
	rows, err := j.db.Pool.Query(ctx, `
		SELECT a.employee_id, a.id, b.id
		FROM leave_requests a
		JOIN leave_requests b
			ON a.employee_id = b.employee_id
			AND a.id < b.id
			AND a.start_date <= b.end_date
			AND b.start_date <= a.end_date
		WHERE a.status = 'Approved' AND b.status = 'Approved'
		ORDER BY a.employee_id, a.id, b.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overlaps []leaveOverlap
	for rows.Next() {
		var o leaveOverlap
		if err := rows.Scan(&o.EmployeeID, &o.FirstID, &o.SecondID); err != nil {
			return nil, err
		}
		overlaps = append(overlaps, o)
	}

	return overlaps, rows.Err()
}
