package http

import (
	"net/http"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/middleware"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
)

type AttendanceHandler interface {
	ListAttendance(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetMyToday(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceRepo attendance.AttendanceRepository
	strict         bool
}

func NewAttendanceHandler(attendanceRepo attendance.AttendanceRepository, strict bool) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceRepo: attendanceRepo,
		strict:         strict,
	}
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceRepo.ListAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewAttendanceResponses(records))
}

// GetMyAttendance returns the current employee's history, newest first.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	records, err := h.attendanceRepo.ListAttendanceByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewAttendanceResponses(records))
}

// GetMyToday implements AttendanceHandler
func (h *attendanceHandlerImpl) GetMyToday(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	today, err := h.attendanceRepo.GetTodayAttendance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.NewTodayResponse(today))
}

// CheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	record, err := h.attendanceRepo.CheckIn(r.Context(), employeeID)
	if err != nil {
		writeMutationError(w, h.strict, err)
		return
	}

	response.Created(w, "Checked in successfully", attendance.NewAttendanceResponse(record))
}

// CheckOut implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeIDFromContext(r.Context())

	record, err := h.attendanceRepo.CheckOut(r.Context(), employeeID)
	if err != nil {
		writeMutationError(w, h.strict, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", attendance.NewAttendanceResponse(record))
}
