package response

import (
	"errors"
	"net/http"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/attendance"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/holiday"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/schedule"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/timesheet"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidCalendarInput):
		BadRequest(w, "Invalid month or year", nil)
	case errors.Is(err, timesheet.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance log not found")
	case errors.Is(err, attendance.ErrRecordAlreadyExists):
		Conflict(w, "Attendance log already exists for this date")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestNotPending):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateInterval):
		BadRequest(w, "Leave end date is before start date", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
