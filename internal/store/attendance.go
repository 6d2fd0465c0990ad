package store

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
)

// CheckIn implements attendance.AttendanceRepository.
// The guard is "no record at all for today", so an employee who has already
// checked out cannot check in again on the same day.
func (s *Store) CheckIn(ctx context.Context, employeeID string) (attendance.Record, error) {
	s.mu.Lock()
	now := s.Now()
	today := truncateDay(now)
	if s.todayIndex(employeeID, today) >= 0 {
		s.mu.Unlock()
		return attendance.Record{}, attendance.ErrAlreadyCheckedIn
	}

	record := attendance.Record{
		ID:         s.newID(),
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    now,
	}
	s.attendance = append(s.attendance, record)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionAttendance, Action: ActionCreated, ID: record.ID, EmployeeID: employeeID, Data: record})
	return record, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (s *Store) CheckOut(ctx context.Context, employeeID string) (attendance.Record, error) {
	s.mu.Lock()
	now := s.Now()
	idx := s.todayIndex(employeeID, truncateDay(now))
	if idx < 0 {
		s.mu.Unlock()
		return attendance.Record{}, attendance.ErrNotCheckedIn
	}
	if !s.attendance[idx].IsOpen() {
		s.mu.Unlock()
		return attendance.Record{}, attendance.ErrAlreadyCheckedOut
	}

	s.attendance[idx].CheckOut = &now
	record := cloneRecord(s.attendance[idx])
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionAttendance, Action: ActionUpdated, ID: record.ID, EmployeeID: employeeID, Data: record})
	return record, nil
}

// ListAttendance implements attendance.AttendanceRepository.
func (s *Store) ListAttendance(ctx context.Context) ([]attendance.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAttendance(s.attendance), nil
}

// ListAttendanceByEmployee implements attendance.AttendanceRepository.
func (s *Store) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]attendance.Record, error) {
	s.mu.RLock()
	records := make([]attendance.Record, 0)
	for _, r := range s.attendance {
		if r.EmployeeID == employeeID {
			records = append(records, cloneRecord(r))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

// GetTodayAttendance implements attendance.AttendanceRepository.
func (s *Store) GetTodayAttendance(ctx context.Context, employeeID string) (attendance.Today, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := attendance.Today{Date: truncateDay(s.Now())}
	if idx := s.todayIndex(employeeID, today.Date); idx >= 0 {
		record := cloneRecord(s.attendance[idx])
		today.Record = &record
	}
	return today, nil
}

// todayIndex finds the employee's record dated today. Must be called with s.mu held.
func (s *Store) todayIndex(employeeID string, today time.Time) int {
	for i, r := range s.attendance {
		if r.EmployeeID == employeeID && sameDay(r.Date, today) {
			return i
		}
	}
	return -1
}
