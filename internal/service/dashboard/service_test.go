package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/dashboard"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/fixtures"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T, now time.Time) (dashboard.DashboardService, *store.Store) {
	t.Helper()
	s := store.New(store.WithClock(func() time.Time { return now }))
	snap, err := fixtures.Seed(time.UTC)
	require.NoError(t, err)
	s.Load(context.Background(), snap)
	return NewDashboardService(s, s, s, s, s, s.Now), s
}

func TestDashboardService_GetSummary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC)
	svc, s := newSeededService(t, now)

	_, err := s.AddEmployee(ctx, employee.Employee{Name: "New Hire", HireDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = s.CheckIn(ctx, "emp1")
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalEmployees)
	assert.Equal(t, 3, summary.TotalProjects)
	assert.Equal(t, 1, summary.PendingLeave)
	assert.Equal(t, 1, summary.NewEmployees)
	assert.Equal(t, 1, summary.ActiveProjects)
	assert.Equal(t, 1, summary.CheckedInToday)
	assert.Equal(t, "2024-07-22", summary.Date)
}

func TestDashboardService_GetSummary_IgnoresFutureHires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC)
	svc, s := newSeededService(t, now)

	_, err := s.AddEmployee(ctx, employee.Employee{Name: "Starts Today", HireDate: time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	_, err = s.AddEmployee(ctx, employee.Employee{Name: "Starts Next Month", HireDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalEmployees)
	assert.Equal(t, 1, summary.NewEmployees)
}

func TestDashboardService_GetEmployeeProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t, time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC))

	profile, err := svc.GetEmployeeProfile(ctx, "emp1")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", profile.Employee.Name)
	assert.Len(t, profile.Projects, 2)
	assert.Empty(t, profile.Attendance)
	assert.Len(t, profile.Timesheets, 1)
	assert.Len(t, profile.LeaveRequests, 1)
}

func TestDashboardService_GetEmployeeProfile_NotFound(t *testing.T) {
	svc, _ := newSeededService(t, time.Now())

	_, err := svc.GetEmployeeProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDashboardService_ListAvailableEmployees(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t, time.Now())

	available, err := svc.ListAvailableEmployees(ctx, "proj1")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "emp2", available[0].ID)

	available, err = svc.ListAvailableEmployees(ctx, "proj3")
	require.NoError(t, err)
	assert.Len(t, available, 3)
}
