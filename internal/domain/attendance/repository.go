package attendance

import (
	"context"
)

// AttendanceRepository defines the attendance collection of the HR data store.
type AttendanceRepository interface {
	// CheckIn creates today's record for the employee.
	// Returns ErrAlreadyCheckedIn if any record exists for today, even a closed one.
	CheckIn(ctx context.Context, employeeID string) (Record, error)

	// CheckOut closes today's open record.
	// Returns ErrNotCheckedIn when there is no record for today and
	// ErrAlreadyCheckedOut when it is already closed.
	CheckOut(ctx context.Context, employeeID string) (Record, error)

	// ListAttendance returns every record in insertion order.
	ListAttendance(ctx context.Context) ([]Record, error)

	// ListAttendanceByEmployee returns the employee's records, newest date first.
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]Record, error)

	GetTodayAttendance(ctx context.Context, employeeID string) (Today, error)
}
