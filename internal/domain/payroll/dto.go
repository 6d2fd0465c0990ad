package payroll

import (
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayrollRequest struct {
	Period string `json:"period,omitempty"` // Empty = current month
}

func (r *CalculatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period != "" && !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CurrentPeriod formats t as a payroll period.
func CurrentPeriod(t time.Time) string {
	return t.Format(validator.PeriodLayout)
}

type PayrollRecordResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Period       string          `json:"period"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	GrossPay     decimal.Decimal `json:"gross_pay"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
}

// NewPayrollRecordResponses joins employee names; unknown IDs render as "N/A".
func NewPayrollRecordResponses(records []PayrollRecord, names map[string]string) []PayrollRecordResponse {
	responses := make([]PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		name, ok := names[r.EmployeeID]
		if !ok {
			name = "N/A"
		}
		responses = append(responses, PayrollRecordResponse{
			EmployeeID:   r.EmployeeID,
			EmployeeName: name,
			Period:       r.Period,
			TotalHours:   r.TotalHours,
			GrossPay:     r.GrossPay,
			Deductions:   r.Deductions,
			NetPay:       r.NetPay,
		})
	}
	return responses
}

type PayrollSummaryResponse struct {
	Period          string          `json:"period"`
	TotalEmployees  int             `json:"total_employees"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	TotalGrossPay   decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

func NewPayrollSummaryResponse(records []PayrollRecord) PayrollSummaryResponse {
	summary := PayrollSummaryResponse{
		TotalEmployees:  len(records),
		TotalHours:      decimal.Zero,
		TotalGrossPay:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}
	for _, r := range records {
		summary.Period = r.Period
		summary.TotalHours = summary.TotalHours.Add(r.TotalHours)
		summary.TotalGrossPay = summary.TotalGrossPay.Add(r.GrossPay)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.Deductions)
		summary.TotalNetPay = summary.TotalNetPay.Add(r.NetPay)
	}
	return summary
}

type ListPayrollResponse struct {
	Records []PayrollRecordResponse `json:"records"`
	Summary PayrollSummaryResponse  `json:"summary"`
}
