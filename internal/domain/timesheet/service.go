package timesheet

import (
	"context"
)

// TimesheetService defines business logic for the monthly timesheet
type TimesheetService interface {
	// GetMonthlyTimesheet reconciles clock logs, holidays and approved leave
	// into a complete per-day timeline plus summary statistics
	GetMonthlyTimesheet(ctx context.Context, req MonthlyTimesheetRequest) (MonthlyTimesheetResponse, error)
}
