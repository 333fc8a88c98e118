package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for raw clock logs.
type RecordRepository interface {
	// Create inserts a new clock log row
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a clock log row by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// Update amends an existing clock log row (supervisor fixing wrong data)
	Update(ctx context.Context, record Record) (Record, error)

	// ListByEmployeeAndMonth retrieves all clock logs for one employee
	// within the given month, ordered by date ascending
	ListByEmployeeAndMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Record, error)
}
