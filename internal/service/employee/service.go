package employee

import (
	"context"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
)

const defaultPageSize = 20

type employeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeesResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	employees, total, err := s.employeeRepo.List(ctx, req.Search, limit, req.Offset)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Employees:  responses,
	}, nil
}
