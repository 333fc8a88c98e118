package schedule

import (
	"context"
)

// ScheduleService defines business logic for shift assignments
type ScheduleService interface {
	// AssignSchedule creates or replaces one employee's shift assignment
	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (ScheduleResponse, error)

	// BulkAssignSchedules applies many assignments in one transaction
	BulkAssignSchedules(ctx context.Context, req BulkAssignScheduleRequest) ([]ScheduleResponse, error)

	// GetEmployeeSchedule retrieves one employee's effective assignment
	GetEmployeeSchedule(ctx context.Context, employeeID string) (ScheduleResponse, error)

	// ListSchedules retrieves the schedule overview, each employee's
	// effective assignment
	ListSchedules(ctx context.Context, req ListSchedulesRequest) (ListSchedulesResponse, error)
}
