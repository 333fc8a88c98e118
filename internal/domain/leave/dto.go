package leave

import (
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

var validLeaveTypes = []string{TypeVacation, TypeSick, TypePersonal, TypeMaternity}

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.LeaveType, validLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Vacation, Sick, Personal, Maternity",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *ReviewLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if !validator.IsInSlice(r.Status, []string{StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

func (r *ListLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" && r.Status == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "either employee_id or status is required",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{StatusPending, StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ListLeaveResponse struct {
	TotalCount int             `json:"total_count"`
	Requests   []LeaveResponse `json:"requests"`
}

// ToResponse converts a request entity into its response representation.
func ToResponse(r Request) LeaveResponse {
	resp := LeaveResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  r.StartDate.Format(time.DateOnly),
		EndDate:    r.EndDate.Format(time.DateOnly),
		Reason:     r.Reason,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}

	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}

	return resp
}
