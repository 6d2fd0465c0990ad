package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/leave"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/jwt"
	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Lookups
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Attendance preconditions
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())

	// Session
	case errors.Is(err, jwt.ErrInvalidSessionToken):
		Unauthorized(w, "Invalid session token")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
