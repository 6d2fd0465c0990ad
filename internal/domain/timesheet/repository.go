package timesheet

import "context"

type TimesheetRepository interface {
	// AddTimesheetEntry assigns a fresh ID and appends without validation.
	AddTimesheetEntry(ctx context.Context, entry Entry) (Entry, error)

	ListTimesheetEntries(ctx context.Context) ([]Entry, error)
	ListTimesheetEntriesByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
}
