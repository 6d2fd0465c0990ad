package employee

import (
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	HireDate   *string         `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateProfile(r.Name, r.Email, r.Role, r.HourlyRate)...)

	if r.HireDate != nil && !validator.IsEmpty(*r.HireDate) {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity leaves HireDate zero when omitted so the store stamps today.
// A given hire date is midnight in loc.
func (r *CreateEmployeeRequest) ToEntity(loc *time.Location) Employee {
	e := Employee{
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		HourlyRate: r.HourlyRate,
	}
	if r.HireDate != nil {
		if d, ok := validator.ParseDateIn(*r.HireDate, loc); ok {
			e.HireDate = d
		}
	}
	return e
}

type UpdateEmployeeRequest struct {
	ID         string          `json:"-"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	HireDate   string          `json:"hire_date"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	errs = append(errs, validateProfile(r.Name, r.Email, r.Role, r.HourlyRate)...)

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateEmployeeRequest) ToEntity(loc *time.Location) Employee {
	hireDate, _ := validator.ParseDateIn(r.HireDate, loc)
	return Employee{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		HourlyRate: r.HourlyRate,
		HireDate:   hireDate,
	}
}

func validateProfile(name, email, role string, hourlyRate decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if hourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	return errs
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	HireDate   string          `json:"hire_date"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Role:       e.Role,
		HourlyRate: e.HourlyRate,
		HireDate:   formatDate(e.HireDate),
	}
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, NewEmployeeResponse(e))
	}
	return responses
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(validator.DateLayout)
}
