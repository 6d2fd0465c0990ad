package project

import "github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"

type CreateProjectRequest struct {
	Name   string `json:"name"`
	Client string `json:"client"`
	Status Status `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Client) {
		errs = append(errs, validator.ValidationError{
			Field:   "client",
			Message: "client is required",
		})
	}
	// Empty status falls back to Not Started in ToEntity.
	if r.Status != "" && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of 'Not Started', 'In Progress', 'Completed'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateProjectRequest) ToEntity() Project {
	status := r.Status
	if status == "" {
		status = StatusNotStarted
	}
	return Project{
		Name:   r.Name,
		Client: r.Client,
		Status: status,
	}
}

type AssignEmployeeRequest struct {
	ProjectID  string `json:"-"`
	EmployeeID string `json:"employee_id"`
}

func (r *AssignEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Client      string   `json:"client"`
	Status      Status   `json:"status"`
	EmployeeIDs []string `json:"employee_ids"`
}

func NewProjectResponse(p Project) ProjectResponse {
	ids := p.EmployeeIDs
	if ids == nil {
		ids = []string{}
	}
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Status:      p.Status,
		EmployeeIDs: ids,
	}
}

func NewProjectResponses(projects []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, NewProjectResponse(p))
	}
	return responses
}
