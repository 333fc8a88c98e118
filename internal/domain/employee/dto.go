package employee

import (
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

type ListEmployeesRequest struct {
	Search string `json:"search"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

func (r *ListEmployeesRequest) Validate() error {
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

type EmployeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Gender     string `json:"gender"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Department string `json:"department"`
	Position   string `json:"position"`
	CreatedAt  string `json:"created_at"`
}

type ListEmployeesResponse struct {
	TotalCount int                `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// ToResponse converts an employee entity into its response representation.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		FullName:   e.FullName(),
		Gender:     e.Gender,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}

	if e.MiddleName != nil {
		resp.MiddleName = *e.MiddleName
	}
	if e.Phone != nil {
		resp.Phone = *e.Phone
	}
	if e.Address != nil {
		resp.Address = *e.Address
	}

	return resp
}
