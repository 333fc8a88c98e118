package schedule

import (
	"context"
)

// ScheduleRepository defines data access methods for shift assignments.
type ScheduleRepository interface {
	// Upsert stores a shift assignment, replacing any assignment the employee
	// already has for the same schedule date
	Upsert(ctx context.Context, s Schedule) (Schedule, error)

	// GetLatestByEmployee retrieves the employee's effective assignment, the
	// latest row by schedule date then creation time
	GetLatestByEmployee(ctx context.Context, employeeID string) (Schedule, error)

	// ListLatestPerEmployee retrieves each employee's effective assignment
	// joined with the register, ordered by employee name, with the total
	// count for pagination
	ListLatestPerEmployee(ctx context.Context, search string, limit, offset int) ([]Schedule, int, error)
}
