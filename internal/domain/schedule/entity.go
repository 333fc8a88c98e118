package schedule

import (
	"time"
)

// Shift kinds assignable to an employee.
const (
	ShiftDay   = "Day Shift"
	ShiftNight = "Night Shift"
)

// Schedule is one shift assignment. The assignment effective for an employee
// is the latest row by schedule date, then by creation time.
type Schedule struct {
	ID           string
	EmployeeID   string
	ShiftType    string
	ScheduleDate time.Time
	StartTime    string // HH:MM:SS
	EndTime      string // HH:MM:SS
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
	Department   *string
}
