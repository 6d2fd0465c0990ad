// Package fixtures holds the demo data a fresh server starts with.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
	"github.com/cmlabs-hris/zenith-hr/internal/store"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Employees     []seedEmployee     `yaml:"employees"`
	Projects      []seedProject      `yaml:"projects"`
	Timesheets    []seedTimesheet    `yaml:"timesheets"`
	LeaveRequests []seedLeaveRequest `yaml:"leave_requests"`
}

// Money and hours are quoted strings in YAML so they parse exactly.
type seedEmployee struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Role       string `yaml:"role"`
	HourlyRate string `yaml:"hourly_rate"`
	HireDate   string `yaml:"hire_date"`
}

type seedProject struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Client      string   `yaml:"client"`
	Status      string   `yaml:"status"`
	EmployeeIDs []string `yaml:"employee_ids"`
}

type seedTimesheet struct {
	ID          string `yaml:"id"`
	EmployeeID  string `yaml:"employee_id"`
	ProjectID   string `yaml:"project_id"`
	Date        string `yaml:"date"`
	Hours       string `yaml:"hours"`
	Description string `yaml:"description"`
}

type seedLeaveRequest struct {
	ID         string `yaml:"id"`
	EmployeeID string `yaml:"employee_id"`
	StartDate  string `yaml:"start_date"`
	EndDate    string `yaml:"end_date"`
	Reason     string `yaml:"reason"`
	Status     string `yaml:"status"`
}

// Seed returns the embedded demo data with dates in loc.
func Seed(loc *time.Location) (store.Snapshot, error) {
	return Parse(seedYAML, loc)
}

// Parse decodes a fixture document in the seed.yaml layout.
func Parse(data []byte, loc *time.Location) (store.Snapshot, error) {
	if loc == nil {
		loc = time.UTC
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	snap := store.Snapshot{
		Employees:     make([]employee.Employee, 0, len(file.Employees)),
		Projects:      make([]project.Project, 0, len(file.Projects)),
		Timesheets:    make([]timesheet.Entry, 0, len(file.Timesheets)),
		LeaveRequests: make([]leave.LeaveRequest, 0, len(file.LeaveRequests)),
	}

	for _, e := range file.Employees {
		rate, err := decimal.NewFromString(e.HourlyRate)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("employee %s: invalid hourly_rate: %w", e.ID, err)
		}
		hireDate, err := time.ParseInLocation(validator.DateLayout, e.HireDate, loc)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("employee %s: invalid hire_date: %w", e.ID, err)
		}
		snap.Employees = append(snap.Employees, employee.Employee{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Role:       e.Role,
			HourlyRate: rate,
			HireDate:   hireDate,
		})
	}

	for _, p := range file.Projects {
		status := project.Status(p.Status)
		if !status.IsValid() {
			return store.Snapshot{}, fmt.Errorf("project %s: invalid status %q", p.ID, p.Status)
		}
		employeeIDs := p.EmployeeIDs
		if employeeIDs == nil {
			employeeIDs = []string{}
		}
		snap.Projects = append(snap.Projects, project.Project{
			ID:          p.ID,
			Name:        p.Name,
			Client:      p.Client,
			Status:      status,
			EmployeeIDs: employeeIDs,
		})
	}

	for _, ts := range file.Timesheets {
		hours, err := decimal.NewFromString(ts.Hours)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("timesheet %s: invalid hours: %w", ts.ID, err)
		}
		date, err := time.ParseInLocation(validator.DateLayout, ts.Date, loc)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("timesheet %s: invalid date: %w", ts.ID, err)
		}
		snap.Timesheets = append(snap.Timesheets, timesheet.Entry{
			ID:          ts.ID,
			EmployeeID:  ts.EmployeeID,
			ProjectID:   ts.ProjectID,
			Date:        date,
			Hours:       hours,
			Description: ts.Description,
		})
	}

	for _, lr := range file.LeaveRequests {
		status := leave.LeaveRequestStatus(lr.Status)
		if !status.IsValid() {
			return store.Snapshot{}, fmt.Errorf("leave request %s: invalid status %q", lr.ID, lr.Status)
		}
		start, err := time.ParseInLocation(validator.DateLayout, lr.StartDate, loc)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("leave request %s: invalid start_date: %w", lr.ID, err)
		}
		end, err := time.ParseInLocation(validator.DateLayout, lr.EndDate, loc)
		if err != nil {
			return store.Snapshot{}, fmt.Errorf("leave request %s: invalid end_date: %w", lr.ID, err)
		}
		snap.LeaveRequests = append(snap.LeaveRequests, leave.LeaveRequest{
			ID:         lr.ID,
			EmployeeID: lr.EmployeeID,
			StartDate:  start,
			EndDate:    end,
			Reason:     lr.Reason,
			Status:     status,
		})
	}

	return snap, nil
}
