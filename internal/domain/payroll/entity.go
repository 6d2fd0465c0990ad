package payroll

import (
	"github.com/shopspring/decimal"
)

// DefaultDeductionRate is the flat share of gross pay withheld on every record.
var DefaultDeductionRate = decimal.RequireFromString("0.15")

// PayrollRecord - derived result of a payroll run.
// The whole set is replaced on every run; records are never edited.
type PayrollRecord struct {
	EmployeeID string
	Period     string // "YYYY-MM", recorded only
	TotalHours decimal.Decimal
	GrossPay   decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal
}

// Compute fills in pay from total hours, an hourly rate and a deduction rate.
func Compute(employeeID, period string, totalHours, hourlyRate, deductionRate decimal.Decimal) PayrollRecord {
	gross := totalHours.Mul(hourlyRate)
	deductions := gross.Mul(deductionRate)
	return PayrollRecord{
		EmployeeID: employeeID,
		Period:     period,
		TotalHours: totalHours,
		GrossPay:   gross,
		Deductions: deductions,
		NetPay:     gross.Sub(deductions),
	}
}
