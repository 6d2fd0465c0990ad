package project

import "context"

type ProjectRepository interface {
	// AddProject assigns a fresh ID and starts with no employees.
	AddProject(ctx context.Context, project Project) (Project, error)

	// AssignEmployeeToProject appends employeeID to the project's EmployeeIDs.
	// Returns ErrProjectNotFound when the project is unknown.
	AssignEmployeeToProject(ctx context.Context, projectID, employeeID string) (Project, error)

	GetProject(ctx context.Context, id string) (Project, error)
	ListProjects(ctx context.Context) ([]Project, error)

	// ListProjectsByEmployee returns projects whose EmployeeIDs contain employeeID.
	ListProjectsByEmployee(ctx context.Context, employeeID string) ([]Project, error)
}
