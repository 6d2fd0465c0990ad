package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/session"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// SessionHandler picks which employee "me" refers to. It checks that the
// employee exists and nothing else.
type SessionHandler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	DeleteSession(w http.ResponseWriter, r *http.Request)
}

type sessionHandlerImpl struct {
	jwtService   jwt.Service
	employeeRepo employee.EmployeeRepository
}

func NewSessionHandler(jwtService jwt.Service, employeeRepo employee.EmployeeRepository) SessionHandler {
	return &sessionHandlerImpl{
		jwtService:   jwtService,
		employeeRepo: employeeRepo,
	}
}

// CreateSession implements SessionHandler
func (h *sessionHandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req session.CreateSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSession decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if _, err := h.employeeRepo.GetEmployee(r.Context(), req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateSessionToken(req.EmployeeID)
	if err != nil {
		slog.Error("GenerateSessionToken error", "error", err)
		response.InternalServerError(w, "Failed to issue session token")
		return
	}

	response.Created(w, "Session created successfully", session.SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		EmployeeID:  req.EmployeeID,
	})
}

// DeleteSession revokes the bearer token of the request, if any.
func (h *sessionHandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	if token == "" {
		response.BadRequest(w, "No session token provided", nil)
		return
	}

	h.jwtService.RevokeToken(token)
	response.SuccessWithMessage(w, "Session ended", nil)
}
