package employee

import "context"

// EmployeeRepository is the employee collection of the HR data store.
type EmployeeRepository interface {
	// AddEmployee assigns a fresh ID and appends. A zero HireDate defaults to today.
	AddEmployee(ctx context.Context, employee Employee) (Employee, error)

	// UpdateEmployee replaces the employee with the same ID.
	// Returns ErrEmployeeNotFound and changes nothing when the ID is unknown.
	UpdateEmployee(ctx context.Context, employee Employee) error

	GetEmployee(ctx context.Context, id string) (Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
}
