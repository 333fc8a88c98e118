package timesheet

import (
	"time"
)

// Status classifies a single calendar day in the reconciled timeline.
// Exactly one status applies per day.
type Status string

const (
	StatusDayOff   Status = "Day Off"
	StatusHoliday  Status = "Holiday"
	StatusLeave    Status = "Leave"
	StatusPresent  Status = "Present"
	StatusLate     Status = "Late"
	StatusAbsent   Status = "Absent"
	StatusNoRecord Status = "No Record"
)

// DayEntry is one row of the reconciled month timeline. The timeline always
// contains exactly one entry per calendar day of the target month, in
// ascending date order.
type DayEntry struct {
	Date         time.Time
	EmployeeID   string
	EmployeeName string
	TimeIn       *time.Time
	TimeOut      *time.Time
	Status       Status
	// StatusDetail carries the holiday description or leave type for
	// Holiday/Leave days; empty otherwise.
	StatusDetail string
	// TotalHours is the rendered duration label ("9 hours",
	// "8 hours and 30 minutes", "0 hours") or "N/A" when either
	// timestamp is missing.
	TotalHours string
}

// StatusLabel renders the status the way the timesheet table shows it,
// e.g. "Holiday (Independence Day)" or "Leave (Sick Leave)".
func (e DayEntry) StatusLabel() string {
	if e.StatusDetail == "" {
		return string(e.Status)
	}
	return string(e.Status) + " (" + e.StatusDetail + ")"
}

// Summary aggregates the reconciled timeline into the dashboard counters.
type Summary struct {
	TotalWorkDays         int
	PresentDays           int
	LateDays              int
	AbsentDays            int
	LeaveDays             int
	HolidayDays           int
	DayOffDays            int
	AttendanceRatePercent int
	TotalWorkedHours      int
	TotalWorkedMinutes    int
}
