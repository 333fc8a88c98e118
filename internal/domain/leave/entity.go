package leave

import (
	"time"
)

// Leave request statuses
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Leave types carried on a request. The reconciler does not interpret the
// type, it only expands the approved interval per day.
const (
	TypeVacation  = "Vacation"
	TypeSick      = "Sick"
	TypePersonal  = "Personal"
	TypeMaternity = "Maternity"
)

// Request is one leave application covering an inclusive date interval.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Interval is the slice of a request that matters to reconciliation: an
// inclusive date range tagged with its leave type.
type Interval struct {
	ID         string
	EmployeeID string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
}

// Interval projects the reconciliation-relevant fields of a request.
func (r Request) Interval() Interval {
	return Interval{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  r.LeaveType,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}
