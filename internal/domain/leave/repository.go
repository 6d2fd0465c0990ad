package leave

import (
	"context"
)

// LeaveRequestRepository - leave request collection of the HR data store
type LeaveRequestRepository interface {
	// RequestLeave assigns a fresh ID and sets the status to Pending.
	RequestLeave(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// UpdateLeaveStatus overwrites the status with no transition guard.
	// Returns ErrLeaveRequestNotFound and changes nothing when the ID is unknown.
	UpdateLeaveStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)

	GetLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	ListLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
}
