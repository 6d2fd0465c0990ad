package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/employee"
)

// AddEmployee implements employee.EmployeeRepository.
// Email format and duplicates are accepted as-is.
func (s *Store) AddEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	e.ID = s.newID()
	if e.HireDate.IsZero() {
		e.HireDate = truncateDay(s.Now())
	}
	s.employees = append(s.employees, e)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionEmployees, Action: ActionCreated, ID: e.ID, EmployeeID: e.ID, Data: e})
	return e, nil
}

// UpdateEmployee implements employee.EmployeeRepository.
func (s *Store) UpdateEmployee(ctx context.Context, e employee.Employee) error {
	s.mu.Lock()
	idx := s.employeeIndex(e.ID)
	if idx < 0 {
		s.mu.Unlock()
		return employee.ErrEmployeeNotFound
	}
	s.employees[idx] = e
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionEmployees, Action: ActionUpdated, ID: e.ID, EmployeeID: e.ID, Data: e})
	return nil
}

// GetEmployee implements employee.EmployeeRepository.
func (s *Store) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.employees[idx], nil
}

// ListEmployees implements employee.EmployeeRepository.
func (s *Store) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneSlice(s.employees), nil
}

// employeeIndex must be called with s.mu held.
func (s *Store) employeeIndex(id string) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
