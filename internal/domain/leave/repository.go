package leave

import (
	"context"
	"time"
)

// RequestRepository defines data access methods for leave requests.
type RequestRepository interface {
	// Create stores a new leave request
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// UpdateStatus transitions a request to a new status
	UpdateStatus(ctx context.Context, id, status string) (Request, error)

	// ListByEmployee retrieves an employee's requests ordered by start date
	// descending
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Request, int, error)

	// ListByStatus retrieves requests in a given status ordered by creation
	// time ascending, for the supervisor review queue
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]Request, int, error)

	// ListApprovedIntervals retrieves the approved intervals of one employee
	// that touch the given month, ordered by start date ascending, id
	// ascending. Ordering is part of the contract: when intervals overlap the
	// reconciler lets the later one win per day.
	ListApprovedIntervals(ctx context.Context, employeeID string, year int, month time.Month) ([]Interval, error)
}
