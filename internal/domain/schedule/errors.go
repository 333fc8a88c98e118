package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound = errors.New("schedule not found")
)
