package attendance

import (
	"time"
)

// Record statuses observed from the time-clock subsystem.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
)

// Record is one raw clock event for one employee on one date, as produced
// by the time-clock subsystem. TimeIn/TimeOut may be missing independently;
// a partial record is valid and degrades to an "N/A" duration downstream.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     *time.Time
	TimeOut    *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
