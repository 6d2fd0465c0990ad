package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/zenith-hr/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayroll(w http.ResponseWriter, r *http.Request)
	CalculatePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewPayrollHandler(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) PayrollHandler {
	return &payrollHandlerImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		now:          now,
	}
}

// ListPayroll returns the records of the last run with employee names joined in.
func (h *payrollHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	records, err := h.payrollRepo.ListPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.buildResponse(r, records)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CalculatePayroll replaces the payroll set. An empty body runs the current month.
func (h *payrollHandlerImpl) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("CalculatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Period == "" {
		req.Period = payroll.CurrentPeriod(h.now())
	}

	records, err := h.payrollRepo.CalculatePayroll(r.Context(), req.Period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.buildResponse(r, records)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculated successfully", resp)
}

func (h *payrollHandlerImpl) buildResponse(r *http.Request, records []payroll.PayrollRecord) (payroll.ListPayrollResponse, error) {
	employees, err := h.employeeRepo.ListEmployees(r.Context())
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	return payroll.ListPayrollResponse{
		Records: payroll.NewPayrollRecordResponses(records, names),
		Summary: payroll.NewPayrollSummaryResponse(records),
	}, nil
}
