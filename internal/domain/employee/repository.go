package employee

import (
	"context"
)

// EmployeeRepository defines read access to the employee register. The
// register is owned by the onboarding system; this service only consumes it.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees ordered by last name, first name, with the
	// total count for pagination
	List(ctx context.Context, search string, limit, offset int) ([]Employee, int, error)
}
