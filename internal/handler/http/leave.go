package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveRepo leave.LeaveRequestRepository
	strict    bool
	location  *time.Location
}

func NewLeaveHandler(leaveRepo leave.LeaveRequestRepository, strict bool, loc *time.Location) LeaveHandler {
	return &leaveHandlerImpl{
		leaveRepo: leaveRepo,
		strict:    strict,
		location:  loc,
	}
}

// ListRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveRepo.ListLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// GetMyRequests implements LeaveHandler
func (h *leaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	requests, err := h.leaveRepo.ListLeaveRequestsByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.NewLeaveRequestResponses(requests))
}

// CreateRequest files a Pending request for the current employee.
func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeIDFromContext(r.Context())

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.leaveRepo.RequestLeave(r.Context(), req.ToEntity(h.location))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.NewLeaveRequestResponse(created))
}

// UpdateStatus sets any status on the request; there is no transition check.
func (h *leaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.leaveRepo.UpdateLeaveStatus(r.Context(), req.RequestID, req.Status)
	if err != nil {
		writeMutationError(w, h.strict, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", leave.NewLeaveRequestResponse(updated))
}
