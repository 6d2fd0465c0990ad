package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/timesheet"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
)

type TimesheetHandler interface {
	ListEntries(w http.ResponseWriter, r *http.Request)
	GetMyEntries(w http.ResponseWriter, r *http.Request)
	CreateEntry(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetRepo timesheet.TimesheetRepository
	today         func() time.Time
}

func NewTimesheetHandler(timesheetRepo timesheet.TimesheetRepository, today func() time.Time) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetRepo: timesheetRepo,
		today:         today,
	}
}

// ListEntries implements TimesheetHandler
func (h *timesheetHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timesheetRepo.ListTimesheetEntries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.NewEntryResponses(entries))
}

// GetMyEntries implements TimesheetHandler
func (h *timesheetHandlerImpl) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	entries, err := h.timesheetRepo.ListTimesheetEntriesByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheet.NewEntryResponses(entries))
}

// CreateEntry logs hours for the current employee. Date defaults to today.
func (h *timesheetHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeIDFromContext(r.Context())

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.timesheetRepo.AddTimesheetEntry(r.Context(), req.ToEntity(h.today()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entry logged successfully", timesheet.NewEntryResponse(created))
}
