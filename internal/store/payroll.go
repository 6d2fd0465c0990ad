package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// CalculatePayroll implements payroll.PayrollRepository.
//
// The period is stamped on each record but does not select entries: every
// timesheet entry the employee ever logged is summed. Employees without
// entries get a zero record. The previous payroll set is discarded.
func (s *Store) CalculatePayroll(ctx context.Context, period string) ([]payroll.PayrollRecord, error) {
	s.mu.Lock()
	hours := make(map[string]decimal.Decimal, len(s.employees))
	for _, entry := range s.timesheets {
		hours[entry.EmployeeID] = hours[entry.EmployeeID].Add(entry.Hours)
	}

	records := make([]payroll.PayrollRecord, 0, len(s.employees))
	employeeIDs := make([]string, 0, len(s.employees))
	for _, e := range s.employees {
		employeeIDs = append(employeeIDs, e.ID)
		total, ok := hours[e.ID]
		if !ok {
			total = decimal.Zero
		}
		records = append(records, payroll.Compute(e.ID, period, total, e.HourlyRate, s.deductionRate))
	}
	s.payroll = records
	result := cloneSlice(records)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionPayroll, Action: ActionReplaced, EmployeeIDs: employeeIDs, Data: result})
	return result, nil
}

// ListPayroll implements payroll.PayrollRepository.
func (s *Store) ListPayroll(ctx context.Context) ([]payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.payroll), nil
}
