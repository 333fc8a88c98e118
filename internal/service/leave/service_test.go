package leave

import (
	"context"
	"testing"
	"time"

	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	requests map[string]leave.Request
}

func (s *stubLeaveRepo) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	s.requests[req.ID] = req
	return req, nil
}

func (s *stubLeaveRepo) GetByID(ctx context.Context, id string) (leave.Request, error) {
	req, ok := s.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return req, nil
}

func (s *stubLeaveRepo) UpdateStatus(ctx context.Context, id, status string) (leave.Request, error) {
	req, ok := s.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	s.requests[id] = req
	return req, nil
}

func (s *stubLeaveRepo) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]leave.Request, int, error) {
	var result []leave.Request
	for _, req := range s.requests {
		if req.EmployeeID == employeeID {
			result = append(result, req)
		}
	}
	return result, len(result), nil
}

func (s *stubLeaveRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]leave.Request, int, error) {
	var result []leave.Request
	for _, req := range s.requests {
		if req.Status == status {
			result = append(result, req)
		}
	}
	return result, len(result), nil
}

func (s *stubLeaveRepo) ListApprovedIntervals(ctx context.Context, employeeID string, year int, month time.Month) ([]leave.Interval, error) {
	return nil, nil
}

type stubEmployeeRepo struct{}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FirstName: "Jane", LastName: "Cruz"}, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context, search string, limit, offset int) ([]employee.Employee, int, error) {
	return nil, 0, nil
}

func newTestService() (leave.RequestService, *stubLeaveRepo) {
	repo := &stubLeaveRepo{requests: make(map[string]leave.Request)}
	return NewRequestService(repo, &stubEmployeeRepo{}), repo
}

func TestSubmitLeave(t *testing.T) {
	svc, repo := newTestService()

	result, err := svc.SubmitLeave(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeVacation,
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-14",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, result.Status)
	assert.Equal(t, "2024-06-10", result.StartDate)
	assert.True(t, validator.IsValidUUID(result.ID))
	assert.Len(t, repo.requests, 1)
}

func TestSubmitLeaveInvalidInterval(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitLeave(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeVacation,
		StartDate:  "2024-06-14",
		EndDate:    "2024-06-10",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
}

func TestSubmitLeaveUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SubmitLeave(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-2",
		LeaveType:  leave.TypeSick,
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-10",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestReviewLeave(t *testing.T) {
	svc, _ := newTestService()

	submitted, err := svc.SubmitLeave(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeSick,
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-11",
	})
	require.NoError(t, err)

	reviewed, err := svc.ReviewLeave(context.Background(), leave.ReviewLeaveRequest{
		ID:     submitted.ID,
		Status: leave.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, reviewed.Status)

	// A processed request cannot be reviewed again
	_, err = svc.ReviewLeave(context.Background(), leave.ReviewLeaveRequest{
		ID:     submitted.ID,
		Status: leave.StatusRejected,
	})
	assert.ErrorIs(t, err, leave.ErrRequestNotPending)
}

func TestReviewLeaveInvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ReviewLeave(context.Background(), leave.ReviewLeaveRequest{
		ID:     "0190b9b8-1111-7abc-8def-000000000001",
		Status: "Cancelled",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}
