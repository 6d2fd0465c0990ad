package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
)

// AddTimesheetEntry implements timesheet.TimesheetRepository.
// Hours and references are stored unchecked; callers validate beforehand.
func (s *Store) AddTimesheetEntry(ctx context.Context, entry timesheet.Entry) (timesheet.Entry, error) {
	s.mu.Lock()
	entry.ID = s.newID()
	s.timesheets = append(s.timesheets, entry)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionTimesheets, Action: ActionCreated, ID: entry.ID, EmployeeID: entry.EmployeeID, Data: entry})
	return entry, nil
}

// ListTimesheetEntries implements timesheet.TimesheetRepository.
func (s *Store) ListTimesheetEntries(ctx context.Context) ([]timesheet.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.timesheets), nil
}

// ListTimesheetEntriesByEmployee implements timesheet.TimesheetRepository.
func (s *Store) ListTimesheetEntriesByEmployee(ctx context.Context, employeeID string) ([]timesheet.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]timesheet.Entry, 0)
	for _, e := range s.timesheets {
		if e.EmployeeID == employeeID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
