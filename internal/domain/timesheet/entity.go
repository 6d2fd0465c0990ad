package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is hours logged by an employee against a project on a date.
// Hours are expected to be positive but the store does not enforce it.
type Entry struct {
	ID          string
	EmployeeID  string
	ProjectID   string
	Date        time.Time
	Hours       decimal.Decimal
	Description string
}
