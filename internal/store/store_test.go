package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now), WithIDGenerator(sequentialIDs())}, opts...)
	return New(opts...), clock
}

func addEmployee(t *testing.T, s *Store, name string, rate int64) employee.Employee {
	t.Helper()
	e, err := s.AddEmployee(context.Background(), employee.Employee{
		Name:       name,
		Email:      name + "@example.com",
		Role:       "Engineer",
		HourlyRate: decimal.NewFromInt(rate),
		HireDate:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return e
}

// ===== EMPLOYEE TESTS =====

func TestStore_AddEmployee_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := New(WithClock(time.Now))

	input := employee.Employee{
		Name:       "John Doe",
		Email:      "john.doe@example.com",
		Role:       "Software Engineer",
		HourlyRate: decimal.NewFromInt(50),
		HireDate:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	first, err := s.AddEmployee(ctx, input)
	require.NoError(t, err)
	second, err := s.AddEmployee(ctx, input)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, input.Name, first.Name)
	assert.Equal(t, input.Email, first.Email)
	assert.Equal(t, input.Role, first.Role)
	assert.True(t, input.HourlyRate.Equal(first.HourlyRate))
	assert.Equal(t, input.HireDate, first.HireDate)

	all, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_AddEmployee_DefaultsHireDateToToday(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.AddEmployee(context.Background(), employee.Employee{Name: "New Hire"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC), e.HireDate)
}

func TestStore_UpdateEmployee(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	e := addEmployee(t, s, "john", 50)

	e.Role = "Tech Lead"
	e.HourlyRate = decimal.NewFromInt(70)
	require.NoError(t, s.UpdateEmployee(ctx, e))

	got, err := s.GetEmployee(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Lead", got.Role)
	assert.True(t, decimal.NewFromInt(70).Equal(got.HourlyRate))
}

func TestStore_UpdateEmployee_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	addEmployee(t, s, "john", 50)
	before := s.Snapshot()

	err := s.UpdateEmployee(ctx, employee.Employee{ID: "missing", Name: "Ghost"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.True(t, IsNoOp(err))
	assert.NoError(t, Silent(err))
	assert.Equal(t, before, s.Snapshot())
}

// ===== PROJECT TESTS =====

func TestStore_AddProject_StartsWithoutAssignments(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.AddProject(context.Background(), project.Project{
		Name:        "Internal CRM",
		Client:      "Internal",
		Status:      project.StatusNotStarted,
		EmployeeIDs: []string{"ignored"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Empty(t, p.EmployeeIDs)
}

func TestStore_AssignEmployeeToProject_AllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	e := addEmployee(t, s, "john", 50)
	p, err := s.AddProject(ctx, project.Project{Name: "CRM", Client: "Internal", Status: project.StatusInProgress})
	require.NoError(t, err)

	_, err = s.AssignEmployeeToProject(ctx, p.ID, e.ID)
	require.NoError(t, err)
	updated, err := s.AssignEmployeeToProject(ctx, p.ID, e.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{e.ID, e.ID}, updated.EmployeeIDs)
}

func TestStore_AssignEmployeeToProject_UnknownEmployeeIsAppended(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	p, err := s.AddProject(ctx, project.Project{Name: "CRM", Client: "Internal", Status: project.StatusInProgress})
	require.NoError(t, err)

	updated, err := s.AssignEmployeeToProject(ctx, p.ID, "nobody")
	require.NoError(t, err)
	assert.Equal(t, []string{"nobody"}, updated.EmployeeIDs)
}

func TestStore_AssignEmployeeToProject_UnknownProjectIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	e := addEmployee(t, s, "john", 50)
	before := s.Snapshot()

	_, err := s.AssignEmployeeToProject(ctx, "missing", e.ID)

	assert.ErrorIs(t, err, project.ErrProjectNotFound)
	assert.NoError(t, Silent(err))
	assert.Equal(t, before, s.Snapshot())
}

func TestStore_ListProjectsByEmployee(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	e := addEmployee(t, s, "john", 50)
	p1, _ := s.AddProject(ctx, project.Project{Name: "One"})
	_, _ = s.AddProject(ctx, project.Project{Name: "Two"})
	_, err := s.AssignEmployeeToProject(ctx, p1.ID, e.ID)
	require.NoError(t, err)

	projects, err := s.ListProjectsByEmployee(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "One", projects[0].Name)
}

func TestStore_GetProject_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	p, _ := s.AddProject(ctx, project.Project{Name: "One"})
	_, err := s.AssignEmployeeToProject(ctx, p.ID, "emp1")
	require.NoError(t, err)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	got.EmployeeIDs[0] = "tampered"

	again, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"emp1"}, again.EmployeeIDs)
}

// ===== ATTENDANCE TESTS =====

func TestStore_CheckIn_TwiceKeepsOneRecord(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t)

	first, err := s.CheckIn(ctx, "emp1")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = s.CheckIn(ctx, "emp1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	records, err := s.ListAttendanceByEmployee(ctx, "emp1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.CheckIn, records[0].CheckIn)
	assert.True(t, records[0].IsOpen())
}

func TestStore_CheckIn_AfterCheckOutIsRejected(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t)

	_, err := s.CheckIn(ctx, "emp1")
	require.NoError(t, err)
	clock.Advance(8 * time.Hour)
	out, err := s.CheckOut(ctx, "emp1")
	require.NoError(t, err)
	clock.Advance(time.Hour)
	_, err = s.CheckIn(ctx, "emp1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	records, err := s.ListAttendanceByEmployee(ctx, "emp1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CheckOut)
	assert.Equal(t, *out.CheckOut, *records[0].CheckOut)
}

func TestStore_CheckOut_Preconditions(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.CheckOut(ctx, "emp1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	_, err = s.CheckIn(ctx, "emp1")
	require.NoError(t, err)
	_, err = s.CheckOut(ctx, "emp1")
	require.NoError(t, err)

	before := s.Snapshot()
	_, err = s.CheckOut(ctx, "emp1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.True(t, IsNoOp(err))
	assert.Equal(t, before, s.Snapshot())
}

func TestStore_CheckIn_NextDayOpensNewRecord(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(t)

	_, err := s.CheckIn(ctx, "emp1")
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	_, err = s.CheckIn(ctx, "emp1")
	require.NoError(t, err)

	records, err := s.ListAttendanceByEmployee(ctx, "emp1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	// newest first
	assert.Equal(t, time.Date(2024, 7, 23, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestStore_GetTodayAttendance(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	today, err := s.GetTodayAttendance(ctx, "emp1")
	require.NoError(t, err)
	assert.Nil(t, today.Record)
	assert.True(t, today.CanCheckIn())
	assert.False(t, today.CanCheckOut())

	_, err = s.CheckIn(ctx, "emp1")
	require.NoError(t, err)

	today, err = s.GetTodayAttendance(ctx, "emp1")
	require.NoError(t, err)
	require.NotNil(t, today.Record)
	assert.False(t, today.CanCheckIn())
	assert.True(t, today.CanCheckOut())
}

func TestStore_Today_UsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 2024-07-22 20:00 UTC is already the 23rd in UTC+7
	s := New(
		WithClock(func() time.Time { return time.Date(2024, 7, 22, 20, 0, 0, 0, time.UTC) }),
		WithLocation(jakarta),
	)

	assert.Equal(t, time.Date(2024, 7, 23, 0, 0, 0, 0, jakarta), s.Today())
}

// ===== TIMESHEET TESTS =====

func TestStore_TimesheetEntries(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.AddTimesheetEntry(ctx, timesheet.Entry{EmployeeID: "emp1", ProjectID: "proj1", Hours: decimal.NewFromInt(8)})
	require.NoError(t, err)
	_, err = s.AddTimesheetEntry(ctx, timesheet.Entry{EmployeeID: "emp2", ProjectID: "proj1", Hours: decimal.NewFromInt(6)})
	require.NoError(t, err)

	all, err := s.ListTimesheetEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)

	mine, err := s.ListTimesheetEntriesByEmployee(ctx, "emp1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "proj1", mine[0].ProjectID)
}

// ===== LEAVE TESTS =====

func TestStore_RequestLeave_StartsPending(t *testing.T) {
	s, _ := newTestStore(t)

	req, err := s.RequestLeave(context.Background(), leave.LeaveRequest{
		EmployeeID: "emp1",
		StartDate:  time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
		Reason:     "Vacation",
		Status:     leave.LeaveRequestStatusApproved,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, leave.LeaveRequestStatusPending, req.Status)
}

func TestStore_UpdateLeaveStatus_AnyTransition(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	req, err := s.RequestLeave(ctx, leave.LeaveRequest{EmployeeID: "emp1", Reason: "Vacation"})
	require.NoError(t, err)

	_, err = s.UpdateLeaveStatus(ctx, req.ID, leave.LeaveRequestStatusRejected)
	require.NoError(t, err)
	updated, err := s.UpdateLeaveStatus(ctx, req.ID, leave.LeaveRequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updated.Status)

	got, err := s.GetLeaveRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, got.Status)
}

func TestStore_UpdateLeaveStatus_UnknownIDLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.RequestLeave(ctx, leave.LeaveRequest{EmployeeID: "emp1", Reason: "Vacation"})
	require.NoError(t, err)
	before := s.Snapshot()

	_, err = s.UpdateLeaveStatus(ctx, "missing", leave.LeaveRequestStatusApproved)

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	assert.NoError(t, Silent(err))
	assert.Equal(t, before, s.Snapshot())
}

// ===== PAYROLL TESTS =====

func TestStore_CalculatePayroll(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	john := addEmployee(t, s, "john", 50)
	idle := addEmployee(t, s, "idle", 65)

	_, err := s.AddTimesheetEntry(ctx, timesheet.Entry{EmployeeID: john.ID, ProjectID: "p", Hours: decimal.NewFromInt(8)})
	require.NoError(t, err)
	_, err = s.AddTimesheetEntry(ctx, timesheet.Entry{EmployeeID: john.ID, ProjectID: "p", Hours: decimal.NewFromInt(6)})
	require.NoError(t, err)

	records, err := s.CalculatePayroll(ctx, "2024-07")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, john.ID, records[0].EmployeeID)
	assert.Equal(t, "2024-07", records[0].Period)
	assert.True(t, decimal.NewFromInt(14).Equal(records[0].TotalHours))
	assert.True(t, decimal.NewFromInt(700).Equal(records[0].GrossPay))
	assert.True(t, decimal.NewFromInt(105).Equal(records[0].Deductions))
	assert.True(t, decimal.NewFromInt(595).Equal(records[0].NetPay))

	assert.Equal(t, idle.ID, records[1].EmployeeID)
	assert.True(t, records[1].TotalHours.IsZero())
	assert.True(t, records[1].NetPay.IsZero())
}

func TestStore_CalculatePayroll_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	john := addEmployee(t, s, "john", 50)
	_, err := s.AddTimesheetEntry(ctx, timesheet.Entry{EmployeeID: john.ID, Hours: decimal.NewFromInt(8)})
	require.NoError(t, err)

	first, err := s.CalculatePayroll(ctx, "2024-07")
	require.NoError(t, err)
	second, err := s.CalculatePayroll(ctx, "2024-07")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stored, err := s.ListPayroll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestStore_CalculatePayroll_IgnoresPeriodWhenSumming(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	john := addEmployee(t, s, "john", 10)
	_, err := s.AddTimesheetEntry(ctx, timesheet.Entry{
		EmployeeID: john.ID,
		Date:       time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		Hours:      decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	records, err := s.CalculatePayroll(ctx, "2024-07")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, decimal.NewFromInt(5).Equal(records[0].TotalHours))
}

func TestStore_CalculatePayroll_CustomDeductionRate(t *testing.T) {
	s, _ := newTestStore(t, WithDeductionRate(decimal.RequireFromString("0.2")))
	john := addEmployee(t, s, "john", 50)
	_, err := s.AddTimesheetEntry(context.Background(), timesheet.Entry{EmployeeID: john.ID, Hours: decimal.NewFromInt(10)})
	require.NoError(t, err)

	records, err := s.CalculatePayroll(context.Background(), "2024-07")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(records[0].Deductions))
	assert.True(t, decimal.NewFromInt(400).Equal(records[0].NetPay))
}

// ===== OBSERVER AND SNAPSHOT TESTS =====

func TestStore_ObserverReceivesAppliedChangesOnly(t *testing.T) {
	ctx := context.Background()
	var changes []Change
	s, _ := newTestStore(t, WithObserver(ObserverFunc(func(ctx context.Context, c Change) {
		changes = append(changes, c)
	})))

	_, err := s.CheckIn(ctx, "emp1")
	require.NoError(t, err)
	_, err = s.CheckIn(ctx, "emp1")
	require.Error(t, err)
	_, err = s.UpdateLeaveStatus(ctx, "missing", leave.LeaveRequestStatusApproved)
	require.Error(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, CollectionAttendance, changes[0].Collection)
	assert.Equal(t, ActionCreated, changes[0].Action)
	assert.Equal(t, "emp1", changes[0].EmployeeID)
}

func TestStore_PayrollChangeNamesEveryEmployee(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	john := addEmployee(t, s, "john", 50)
	jane := addEmployee(t, s, "jane", 40)

	var changes []Change
	s.Subscribe(ObserverFunc(func(ctx context.Context, c Change) {
		changes = append(changes, c)
	}))

	_, err := s.CalculatePayroll(ctx, "2024-07")
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, CollectionPayroll, changes[0].Collection)
	assert.Equal(t, ActionReplaced, changes[0].Action)
	assert.Equal(t, []string{john.ID, jane.ID}, changes[0].EmployeeIDs)
}

func TestStore_ObserverMayReadStore(t *testing.T) {
	s, _ := newTestStore(t)
	var seen int
	s.Subscribe(ObserverFunc(func(ctx context.Context, c Change) {
		employees, _ := s.ListEmployees(ctx)
		seen = len(employees)
	}))

	addEmployee(t, s, "john", 50)
	assert.Equal(t, 1, seen)
}

func TestStore_LoadAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	snap := Snapshot{
		Employees: []employee.Employee{{ID: "emp1", Name: "John Doe", HourlyRate: decimal.NewFromInt(50)}},
		Projects:  []project.Project{{ID: "proj1", Name: "CRM", EmployeeIDs: []string{"emp1"}}},
	}

	s.Load(ctx, snap)
	snap.Projects[0].EmployeeIDs[0] = "tampered"

	got := s.Snapshot()
	require.Len(t, got.Employees, 1)
	assert.Equal(t, "emp1", got.Employees[0].ID)
	assert.Equal(t, []string{"emp1"}, got.Projects[0].EmployeeIDs)
	assert.Empty(t, got.Attendance)
}

func TestStore_ConcurrentCheckIns(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CheckIn(ctx, "emp1")
		}()
	}
	wg.Wait()

	records, err := s.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSilent(t *testing.T) {
	assert.NoError(t, Silent(nil))
	assert.NoError(t, Silent(attendance.ErrNotCheckedIn))
	assert.NoError(t, Silent(fmt.Errorf("wrapped: %w", project.ErrProjectNotFound)))

	other := fmt.Errorf("boom")
	assert.Equal(t, other, Silent(other))
	assert.False(t, IsNoOp(other))
}
