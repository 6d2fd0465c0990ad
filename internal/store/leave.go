package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
)

// RequestLeave implements leave.LeaveRequestRepository.
func (s *Store) RequestLeave(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.mu.Lock()
	request.ID = s.newID()
	request.Status = leave.LeaveRequestStatusPending
	s.leaveRequests = append(s.leaveRequests, request)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionLeave, Action: ActionCreated, ID: request.ID, EmployeeID: request.EmployeeID, Data: request})
	return request, nil
}

// UpdateLeaveStatus implements leave.LeaveRequestRepository.
// Any status may replace any other; Rejected can go back to Approved.
func (s *Store) UpdateLeaveStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	s.mu.Lock()
	idx := s.leaveIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	s.leaveRequests[idx].Status = status
	updated := s.leaveRequests[idx]
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionLeave, Action: ActionUpdated, ID: id, EmployeeID: updated.EmployeeID, Data: updated})
	return updated, nil
}

// GetLeaveRequest implements leave.LeaveRequestRepository.
func (s *Store) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.leaveIndex(id)
	if idx < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return s.leaveRequests[idx], nil
}

// ListLeaveRequests implements leave.LeaveRequestRepository.
func (s *Store) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.leaveRequests), nil
}

// ListLeaveRequestsByEmployee implements leave.LeaveRequestRepository.
func (s *Store) ListLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]leave.LeaveRequest, 0)
	for _, r := range s.leaveRequests {
		if r.EmployeeID == employeeID {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

// leaveIndex must be called with s.mu held.
func (s *Store) leaveIndex(id string) int {
	for i, r := range s.leaveRequests {
		if r.ID == id {
			return i
		}
	}
	return -1
}
