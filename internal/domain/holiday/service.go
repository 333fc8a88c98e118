package holiday

import (
	"context"
)

// HolidayService defines business logic for the holiday calendar
type HolidayService interface {
	// DeclareHoliday adds a new non-working day to the calendar
	DeclareHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)

	// RemoveHoliday deletes a declared non-working day
	RemoveHoliday(ctx context.Context, id string) error

	// ListHolidays retrieves the holidays of a month
	ListHolidays(ctx context.Context, req ListHolidaysRequest) (ListHolidaysResponse, error)
}
