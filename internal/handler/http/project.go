package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/dashboard"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	AssignEmployee(w http.ResponseWriter, r *http.Request)
	ListAvailableEmployees(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectRepo      project.ProjectRepository
	dashboardService dashboard.DashboardService
	strict           bool
}

func NewProjectHandler(projectRepo project.ProjectRepository, dashboardService dashboard.DashboardService, strict bool) ProjectHandler {
	return &projectHandlerImpl{
		projectRepo:      projectRepo,
		dashboardService: dashboardService,
		strict:           strict,
	}
}

// ListProjects implements ProjectHandler
func (h *projectHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectRepo.ListProjects(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, project.NewProjectResponses(projects))
}

// CreateProject implements ProjectHandler
func (h *projectHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.projectRepo.AddProject(r.Context(), req.ToEntity())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", project.NewProjectResponse(created))
}

// AssignEmployee appends the employee to the project team. Repeated
// assignments are recorded again.
func (h *projectHandlerImpl) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	var req project.AssignEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.projectRepo.AssignEmployeeToProject(r.Context(), req.ProjectID, req.EmployeeID)
	if err != nil {
		writeMutationError(w, h.strict, err)
		return
	}

	response.SuccessWithMessage(w, "Employee assigned successfully", project.NewProjectResponse(updated))
}

// ListAvailableEmployees implements ProjectHandler
func (h *projectHandlerImpl) ListAvailableEmployees(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	employees, err := h.dashboardService.ListAvailableEmployees(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}
