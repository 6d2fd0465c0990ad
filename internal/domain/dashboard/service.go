package dashboard

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetEmployeeProfile gathers everything recorded against one employee.
	GetEmployeeProfile(ctx context.Context, employeeID string) (EmployeeProfileResponse, error)

	// ListAvailableEmployees returns employees not yet assigned to the project.
	ListAvailableEmployees(ctx context.Context, projectID string) ([]employee.EmployeeResponse, error)
}
