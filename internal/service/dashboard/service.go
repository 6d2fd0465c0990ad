package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/dashboard"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// newEmployeeWindow is how far back a hire date counts toward onboarding.
// Hire dates after now are not counted.
const newEmployeeWindow = 30 * 24 * time.Hour

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	projectRepo    project.ProjectRepository
	attendanceRepo attendance.AttendanceRepository
	timesheetRepo  timesheet.TimesheetRepository
	leaveRepo      leave.LeaveRequestRepository
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	projectRepo project.ProjectRepository,
	attendanceRepo attendance.AttendanceRepository,
	timesheetRepo timesheet.TimesheetRepository,
	leaveRepo leave.LeaveRequestRepository,
	now func() time.Time,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		attendanceRepo: attendanceRepo,
		timesheetRepo:  timesheetRepo,
		leaveRepo:      leaveRepo,
		now:            now,
	}
}

// GetSummary counts the landing cards. Each collection is read concurrently;
// the counts are not a single consistent snapshot.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	now := s.now()
	since := now.Add(-newEmployeeWindow)

	var (
		employees []employee.Employee
		projects  []project.Project
		requests  []leave.LeaveRequest
		records   []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.ListEmployees(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListProjects(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.ListLeaveRequests(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListAttendance(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	summary := dashboard.SummaryResponse{
		TotalEmployees: len(employees),
		TotalProjects:  len(projects),
		Date:           now.Format(validator.DateLayout),
	}
	for _, e := range employees {
		if !e.HireDate.Before(since) && !e.HireDate.After(now) {
			summary.NewEmployees++
		}
	}
	for _, p := range projects {
		if p.Status == project.StatusInProgress {
			summary.ActiveProjects++
		}
	}
	for _, r := range requests {
		if r.Status == leave.LeaveRequestStatusPending {
			summary.PendingLeave++
		}
	}
	today := now.Format(validator.DateLayout)
	for _, r := range records {
		if r.Date.Format(validator.DateLayout) == today {
			summary.CheckedInToday++
		}
	}

	return summary, nil
}

// GetEmployeeProfile implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetEmployeeProfile(ctx context.Context, employeeID string) (dashboard.EmployeeProfileResponse, error) {
	e, err := s.employeeRepo.GetEmployee(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeProfileResponse{}, err
	}

	var (
		projects []project.Project
		records  []attendance.Record
		entries  []timesheet.Entry
		requests []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.ListProjectsByEmployee(gCtx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListAttendanceByEmployee(gCtx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.timesheetRepo.ListTimesheetEntriesByEmployee(gCtx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.ListLeaveRequestsByEmployee(gCtx, employeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.EmployeeProfileResponse{}, err
	}

	return dashboard.EmployeeProfileResponse{
		Employee:      employee.NewEmployeeResponse(e),
		Projects:      project.NewProjectResponses(projects),
		Attendance:    attendance.NewAttendanceResponses(records),
		Timesheets:    timesheet.NewEntryResponses(entries),
		LeaveRequests: leave.NewLeaveRequestResponses(requests),
	}, nil
}

// ListAvailableEmployees implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ListAvailableEmployees(ctx context.Context, projectID string) ([]employee.EmployeeResponse, error) {
	p, err := s.projectRepo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if !p.HasEmployee(e.ID) {
			available = append(available, e)
		}
	}
	return employee.NewEmployeeResponses(available), nil
}
