package dashboard

import (
	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
)

// ========== SUMMARY CARDS ==========

// SummaryResponse backs the dashboard landing cards
type SummaryResponse struct {
	TotalEmployees int    `json:"total_employees"`
	TotalProjects  int    `json:"total_projects"`
	PendingLeave   int    `json:"pending_leave"`
	NewEmployees   int    `json:"new_employees"` // hired within 30 days
	ActiveProjects int    `json:"active_projects"`
	CheckedInToday int    `json:"checked_in_today"`
	Date           string `json:"date"` // Format: "YYYY-MM-DD"
}

// ========== EMPLOYEE PROFILE ==========

// EmployeeProfileResponse is the employee detail view
type EmployeeProfileResponse struct {
	Employee      employee.EmployeeResponse       `json:"employee"`
	Projects      []project.ProjectResponse       `json:"projects"`
	Attendance    []attendance.AttendanceResponse `json:"attendance"`
	Timesheets    []timesheet.EntryResponse       `json:"timesheets"`
	LeaveRequests []leave.LeaveRequestResponse    `json:"leave_requests"`
}
