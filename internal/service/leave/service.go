package leave

import (
	"context"

	"github.com/google/uuid"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/employee"
	"github.com/hr2-portal/hr2-backend-go/internal/domain/leave"
	"github.com/hr2-portal/hr2-backend-go/internal/pkg/validator"
)

const defaultPageSize = 20

type requestService struct {
	leaveRepo    leave.RequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewRequestService(
	leaveRepo leave.RequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.RequestService {
	return &requestService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// SubmitLeave implements leave.RequestService.
func (s *requestService) SubmitLeave(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.Request{
		ID:         id.String(),
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// ReviewLeave implements leave.RequestService.
func (s *requestService) ReviewLeave(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrRequestNotPending
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// ListLeaves implements leave.RequestService.
func (s *requestService) ListLeaves(ctx context.Context, req leave.ListLeaveRequest) (leave.ListLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	var (
		requests []leave.Request
		total    int
		err      error
	)

	if req.EmployeeID != "" {
		requests, total, err = s.leaveRepo.ListByEmployee(ctx, req.EmployeeID, limit, offset)
	} else {
		requests, total, err = s.leaveRepo.ListByStatus(ctx, req.Status, limit, offset)
	}
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToResponse(r))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Requests:   responses,
	}, nil
}
