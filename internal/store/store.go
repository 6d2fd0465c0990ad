// Package store is the in-memory HR data store. It owns the six entity
// collections and every mutation on them. Nothing is persisted.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	_ employee.EmployeeRepository     = (*Store)(nil)
	_ project.ProjectRepository       = (*Store)(nil)
	_ attendance.AttendanceRepository = (*Store)(nil)
	_ timesheet.TimesheetRepository   = (*Store)(nil)
	_ leave.LeaveRequestRepository    = (*Store)(nil)
	_ payroll.PayrollRepository       = (*Store)(nil)
)

// Collection names used in Change notifications.
const (
	CollectionEmployees  = "employees"
	CollectionProjects   = "projects"
	CollectionAttendance = "attendance"
	CollectionTimesheets = "timesheets"
	CollectionLeave      = "leave_requests"
	CollectionPayroll    = "payroll"
)

// Change actions.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionReplaced = "replaced"
)

// Change describes one applied mutation. No-ops produce no Change.
// EmployeeIDs is set when a change touches several employees, such as a
// payroll run.
type Change struct {
	Collection  string
	Action      string
	ID          string
	EmployeeID  string
	EmployeeIDs []string
	Data        interface{}
}

// Observer is notified after a mutation has been applied and the lock released.
type Observer interface {
	Notify(ctx context.Context, change Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, change Change)

func (f ObserverFunc) Notify(ctx context.Context, change Change) {
	f(ctx, change)
}

// Store holds every collection in insertion order behind one RWMutex, so each
// operation is atomic with respect to concurrent callers.
type Store struct {
	mu sync.RWMutex

	employees     []employee.Employee
	projects      []project.Project
	attendance    []attendance.Record
	timesheets    []timesheet.Entry
	leaveRequests []leave.LeaveRequest
	payroll       []payroll.PayrollRecord

	now           func() time.Time
	location      *time.Location
	newID         func() string
	deductionRate decimal.Decimal
	observers     []Observer
}

type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithDeductionRate(rate decimal.Decimal) Option {
	return func(s *Store) {
		s.deductionRate = rate
	}
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		s.observers = append(s.observers, o)
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		location:      time.UTC,
		newID:         newUUIDv7,
		deductionRate: payroll.DefaultDeductionRate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Subscribe adds an observer after construction.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Now returns the store clock in the store location.
func (s *Store) Now() time.Time {
	return s.now().In(s.location)
}

// Location returns the zone that decides which calendar day "today" is.
func (s *Store) Location() *time.Location {
	return s.location
}

// Today returns midnight of the current calendar day in the store location.
func (s *Store) Today() time.Time {
	return truncateDay(s.Now())
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *Store) notify(ctx context.Context, change Change) {
	s.mu.RLock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, o := range observers {
		o.Notify(ctx, change)
	}
}

// noOpErrors are the failed preconditions that leave the store unchanged.
var noOpErrors = []error{
	employee.ErrEmployeeNotFound,
	project.ErrProjectNotFound,
	attendance.ErrAlreadyCheckedIn,
	attendance.ErrNotCheckedIn,
	attendance.ErrAlreadyCheckedOut,
	leave.ErrLeaveRequestNotFound,
}

// IsNoOp reports whether err means the mutation was skipped without changes.
func IsNoOp(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range noOpErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Silent drops no-op errors, giving back "ignore and continue" semantics.
func Silent(err error) error {
	if IsNoOp(err) {
		return nil
	}
	return err
}
