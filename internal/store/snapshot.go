package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
)

// Snapshot is a deep copy of all collections.
type Snapshot struct {
	Employees     []employee.Employee
	Projects      []project.Project
	Attendance    []attendance.Record
	Timesheets    []timesheet.Entry
	LeaveRequests []leave.LeaveRequest
	Payroll       []payroll.PayrollRecord
}

// Snapshot captures a point-in-time clone of every collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Employees:     cloneSlice(s.employees),
		Projects:      cloneProjects(s.projects),
		Attendance:    cloneAttendance(s.attendance),
		Timesheets:    cloneSlice(s.timesheets),
		LeaveRequests: cloneSlice(s.leaveRequests),
		Payroll:       cloneSlice(s.payroll),
	}
}

// Load replaces every collection with a copy of snap. Used for seeding.
func (s *Store) Load(ctx context.Context, snap Snapshot) {
	s.mu.Lock()
	s.employees = cloneSlice(snap.Employees)
	s.projects = cloneProjects(snap.Projects)
	s.attendance = cloneAttendance(snap.Attendance)
	s.timesheets = cloneSlice(snap.Timesheets)
	s.leaveRequests = cloneSlice(snap.LeaveRequests)
	s.payroll = cloneSlice(snap.Payroll)
	s.mu.Unlock()

	for _, collection := range []string{
		CollectionEmployees, CollectionProjects, CollectionAttendance,
		CollectionTimesheets, CollectionLeave, CollectionPayroll,
	} {
		s.notify(ctx, Change{Collection: collection, Action: ActionReplaced})
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneProject(p project.Project) project.Project {
	p.EmployeeIDs = cloneSlice(p.EmployeeIDs)
	return p
}

func cloneProjects(in []project.Project) []project.Project {
	out := make([]project.Project, 0, len(in))
	for _, p := range in {
		out = append(out, cloneProject(p))
	}
	return out
}

func cloneRecord(r attendance.Record) attendance.Record {
	if r.CheckOut != nil {
		checkOut := *r.CheckOut
		r.CheckOut = &checkOut
	}
	return r
}

func cloneAttendance(in []attendance.Record) []attendance.Record {
	out := make([]attendance.Record, 0, len(in))
	for _, r := range in {
		out = append(out, cloneRecord(r))
	}
	return out
}
