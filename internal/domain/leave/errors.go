package leave

import "errors"

// Leave domain errors
var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrRequestNotPending   = errors.New("leave request is not pending")
	ErrInvalidDateInterval = errors.New("leave end date is before start date")
)
