package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/dashboard"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo     employee.EmployeeRepository
	dashboardService dashboard.DashboardService
	strict           bool
	location         *time.Location
}

// NewEmployeeHandler parses hire dates in loc.
func NewEmployeeHandler(employeeRepo employee.EmployeeRepository, dashboardService dashboard.DashboardService, strict bool, loc *time.Location) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo:     employeeRepo,
		dashboardService: dashboardService,
		strict:           strict,
		location:         loc,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.NewEmployeeResponses(employees))
}

// GetEmployee returns the employee profile: the record plus everything logged against it.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	profile, err := h.dashboardService.GetEmployeeProfile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeRepo.AddEmployee(r.Context(), req.ToEntity(h.location))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", employee.NewEmployeeResponse(created))
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated := req.ToEntity(h.location)
	if err := h.employeeRepo.UpdateEmployee(r.Context(), updated); err != nil {
		writeMutationError(w, h.strict, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", employee.NewEmployeeResponse(updated))
}
