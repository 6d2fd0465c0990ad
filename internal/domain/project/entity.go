package project

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project keeps EmployeeIDs in assignment order. Duplicates are allowed and
// IDs are not checked against the employee collection.
type Project struct {
	ID          string
	Name        string
	Client      string
	Status      Status
	EmployeeIDs []string
}

// HasEmployee reports whether employeeID has been assigned at least once.
func (p Project) HasEmployee(employeeID string) bool {
	for _, id := range p.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}
