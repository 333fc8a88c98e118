package postgresql

import (
	"context"
	"fmt"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, first_name, middle_name, last_name, gender, email,
			   phone, address, department, position, created_at, updated_at
		FROM employee_register
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FirstName, &emp.MiddleName, &emp.LastName,
		&emp.Gender, &emp.Email, &emp.Phone, &emp.Address,
		&emp.Department, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, search string, limit, offset int) ([]employee.Employee, int, error) {
	q := GetQuerier(ctx, e.db)

	pattern := "%" + search + "%"

	var total int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM employee_register
		WHERE $1 = '%%' OR CONCAT(first_name, ' ', last_name) ILIKE $1 OR department ILIKE $1
	`, pattern).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT id, first_name, middle_name, last_name, gender, email,
			   phone, address, department, position, created_at, updated_at
		FROM employee_register
		WHERE $1 = '%%' OR CONCAT(first_name, ' ', last_name) ILIKE $1 OR department ILIKE $1
		ORDER BY last_name ASC, first_name ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FirstName, &emp.MiddleName, &emp.LastName,
			&emp.Gender, &emp.Email, &emp.Phone, &emp.Address,
			&emp.Department, &emp.Position, &emp.CreatedAt, &emp.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, total, nil
}
