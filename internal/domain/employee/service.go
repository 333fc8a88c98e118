package employee

import (
	"context"
)

// EmployeeService defines read-only business logic over the employee register
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves a paginated, searchable employee directory
	ListEmployees(ctx context.Context, req ListEmployeesRequest) (ListEmployeesResponse, error)
}
