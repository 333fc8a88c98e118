package timesheet

import (
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type MonthlyTimesheetRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayEntryResponse struct {
	Date       string  `json:"date"`
	DayOfWeek  string  `json:"day_of_week"`
	TimeIn     *string `json:"time_in,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
	Status     string  `json:"status"`
	TotalHours string  `json:"total_hours"`
}

type SummaryResponse struct {
	TotalWorkDays         int `json:"total_work_days"`
	PresentDays           int `json:"present_days"`
	LateDays              int `json:"late_days"`
	AbsentDays            int `json:"absent_days"`
	LeaveDays             int `json:"leave_days"`
	HolidayDays           int `json:"holiday_days"`
	DayOffDays            int `json:"day_off_days"`
	AttendanceRatePercent int `json:"attendance_rate_percent"`
	TotalWorkedHours      int `json:"total_worked_hours"`
	TotalWorkedMinutes    int `json:"total_worked_minutes"`
}

type MonthlyTimesheetResponse struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Month        int                `json:"month"`
	Year         int                `json:"year"`
	Days         []DayEntryResponse `json:"days"`
	Summary      SummaryResponse    `json:"summary"`
}
