package attendance

import (
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE LOG DTOs
// ========================================

type CreateRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`               // YYYY-MM-DD
	TimeIn     *string `json:"time_in,omitempty"`  // HH:MM or HH:MM:SS
	TimeOut    *string `json:"time_out,omitempty"` // HH:MM or HH:MM:SS
	Status     string  `json:"status"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.TimeIn != nil && *r.TimeIn != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.TimeIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.TimeOut != nil && *r.TimeOut != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.TimeOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	ID      string  `json:"-"`
	TimeIn  *string `json:"time_in,omitempty"`
	TimeOut *string `json:"time_out,omitempty"`
	Status  *string `json:"status,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TimeIn != nil && *r.TimeIn != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.TimeIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.TimeOut != nil && *r.TimeOut != "" {
		if _, valid := validator.IsValidTimeOfDay(*r.TimeOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be in HH:MM or HH:MM:SS format",
			})
		}
	}

	if r.Status != nil && validator.IsEmpty(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *ListRecordsRequest) Validate() error {
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

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	TimeIn       *string `json:"time_in,omitempty"`
	TimeOut      *string `json:"time_out,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListRecordsResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}
