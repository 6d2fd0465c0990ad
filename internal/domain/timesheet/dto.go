package timesheet

import (
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest carries the checks the dashboard form applied before
// logging hours: a project must be chosen and hours must be positive.
type CreateEntryRequest struct {
	EmployeeID  string          `json:"-"`
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date,omitempty"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if !r.Hours.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be greater than zero",
		})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity uses today when Date is omitted.
func (r *CreateEntryRequest) ToEntity(today time.Time) Entry {
	date := today
	if d, ok := validator.ParseDateIn(r.Date, today.Location()); ok {
		date = d
	}
	return Entry{
		EmployeeID:  r.EmployeeID,
		ProjectID:   r.ProjectID,
		Date:        date,
		Hours:       r.Hours,
		Description: r.Description,
	}
}

type EntryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	ProjectID   string          `json:"project_id"`
	Date        string          `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		ProjectID:   e.ProjectID,
		Date:        e.Date.Format(validator.DateLayout),
		Hours:       e.Hours,
		Description: e.Description,
	}
}

func NewEntryResponses(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, NewEntryResponse(e))
	}
	return responses
}
