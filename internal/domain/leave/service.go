package leave

import (
	"context"
)

// RequestService defines business logic for leave requests
type RequestService interface {
	// SubmitLeave files a new leave request in Pending status
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// ReviewLeave approves or rejects a pending request
	ReviewLeave(ctx context.Context, req ReviewLeaveRequest) (LeaveResponse, error)

	// ListLeaves retrieves requests filtered by employee or status
	ListLeaves(ctx context.Context, req ListLeaveRequest) (ListLeaveResponse, error)
}
