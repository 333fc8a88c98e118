package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for declared non-working days.
type HolidayRepository interface {
	// Create declares a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// Delete removes a declared holiday by ID
	Delete(ctx context.Context, id string) error

	// ListByMonth retrieves holidays falling in the given month, ordered by
	// date ascending, id ascending
	ListByMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)

	// ListDuplicateDates returns dates claimed by more than one holiday row,
	// used by the calendar integrity job
	ListDuplicateDates(ctx context.Context) ([]time.Time, error)
}
