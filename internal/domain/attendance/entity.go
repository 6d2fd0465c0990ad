package attendance

import (
	"time"
)

// Record is one employee's attendance for one calendar day.
// CheckOut is nil while the record is open and is set at most once.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
}

func (r Record) IsOpen() bool {
	return r.CheckOut == nil
}

// Today is an employee's attendance state for the store's current date.
type Today struct {
	Date   time.Time
	Record *Record
}

// CanCheckIn is true only when no record exists for the day, closed or not.
func (t Today) CanCheckIn() bool {
	return t.Record == nil
}

func (t Today) CanCheckOut() bool {
	return t.Record != nil && t.Record.IsOpen()
}
