package leave

import (
	"time"

	"github.com/cmlabs-hris/zenith-hr/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateLeaveRequestRequest) ToEntity(loc *time.Location) LeaveRequest {
	start, _ := validator.ParseDateIn(r.StartDate, loc)
	end, _ := validator.ParseDateIn(r.EndDate, loc)
	return LeaveRequest{
		EmployeeID: r.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     r.Reason,
	}
}

type UpdateLeaveStatusRequest struct {
	RequestID string             `json:"-"`
	Status    LeaveRequestStatus `json:"status"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of 'Pending', 'Approved', 'Rejected'",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Reason     string             `json:"reason"`
	Status     LeaveRequestStatus `json:"status"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format(validator.DateLayout),
		EndDate:    r.EndDate.Format(validator.DateLayout),
		Reason:     r.Reason,
		Status:     r.Status,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, NewLeaveRequestResponse(r))
	}
	return responses
}
