package attendance

import (
	"time"
)

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.Format("2006-01-02"),
		CheckIn:    r.CheckIn.Format(time.RFC3339),
	}
	if r.CheckOut != nil {
		checkOut := r.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}

func NewAttendanceResponses(records []Record) []AttendanceResponse {
	responses := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, NewAttendanceResponse(r))
	}
	return responses
}

type TodayResponse struct {
	Date        string              `json:"date"`
	Record      *AttendanceResponse `json:"record"`
	CanCheckIn  bool                `json:"can_check_in"`
	CanCheckOut bool                `json:"can_check_out"`
}

func NewTodayResponse(t Today) TodayResponse {
	resp := TodayResponse{
		Date:        t.Date.Format("2006-01-02"),
		CanCheckIn:  t.CanCheckIn(),
		CanCheckOut: t.CanCheckOut(),
	}
	if t.Record != nil {
		rec := NewAttendanceResponse(*t.Record)
		resp.Record = &rec
	}
	return resp
}
