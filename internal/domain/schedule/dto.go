package schedule

import (
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

var validShiftTypes = []string{ShiftDay, ShiftNight}

type AssignScheduleRequest struct {
	EmployeeID   string `json:"employee_id"`
	ShiftType    string `json:"shift_type"`
	ScheduleDate string `json:"schedule_date"` // YYYY-MM-DD
	StartTime    string `json:"start_time"`    // HH:MM or HH:MM:SS
	EndTime      string `json:"end_time"`      // HH:MM or HH:MM:SS
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.ShiftType, validShiftTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be Day Shift or Night Shift",
		})
	}

	if _, valid := validator.IsValidDate(r.ScheduleDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_date",
			Message: "schedule_date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidTimeOfDay(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if _, valid := validator.IsValidTimeOfDay(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkAssignScheduleRequest struct {
	Assignments []AssignScheduleRequest `json:"assignments"`
}

func (r *BulkAssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Assignments) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assignments",
			Message: "assignments must not be empty",
		})
	}

	for i := range r.Assignments {
		if err := r.Assignments[i].Validate(); err != nil {
			if verrs, ok := err.(validator.ValidationErrors); ok {
				errs = append(errs, verrs...)
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListSchedulesRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

func (r *ListSchedulesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if r.Offset < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "offset",
			Message: "offset must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Department   string `json:"department,omitempty"`
	ShiftType    string `json:"shift_type"`
	ScheduleDate string `json:"schedule_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	UpdatedAt    string `json:"updated_at"`
}

type ListSchedulesResponse struct {
	TotalCount int                `json:"total_count"`
	Schedules  []ScheduleResponse `json:"schedules"`
}

// ToResponse converts a schedule entity into its response representation.
func ToResponse(s Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		ShiftType:    s.ShiftType,
		ScheduleDate: s.ScheduleDate.Format(time.DateOnly),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}

	if s.EmployeeName != nil {
		resp.EmployeeName = *s.EmployeeName
	}
	if s.Department != nil {
		resp.Department = *s.Department
	}

	return resp
}
