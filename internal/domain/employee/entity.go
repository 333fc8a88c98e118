package employee

import (
	"time"
)

// Employee mirrors one row of the employee register.
type Employee struct {
	ID         string
	FirstName  string
	MiddleName *string
	LastName   string
	Gender     string
	Email      string
	Phone      *string
	Address    *string
	Department string
	Position   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins the name parts, skipping an absent middle name.
func (e Employee) FullName() string {
	if e.MiddleName != nil && *e.MiddleName != "" {
		return e.FirstName + " " + *e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}
