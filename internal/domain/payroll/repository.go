package payroll

import "context"

type PayrollRepository interface {
	// CalculatePayroll sums every timesheet entry of each employee, regardless
	// of period, and replaces the payroll collection with one record per employee.
	CalculatePayroll(ctx context.Context, period string) ([]PayrollRecord, error)

	ListPayroll(ctx context.Context) ([]PayrollRecord, error)
}
