package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidCalendarInput = errors.New("invalid month or year for calendar")
	ErrEmployeeNotFound     = errors.New("employee not found for timesheet")
)
