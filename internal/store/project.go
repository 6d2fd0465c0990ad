package store

import (
	"context"

	"github.com/cmlabs-hris/zenith-hr/internal/domain/project"
)

// AddProject implements project.ProjectRepository.
func (s *Store) AddProject(ctx context.Context, p project.Project) (project.Project, error) {
	s.mu.Lock()
	p.ID = s.newID()
	p.EmployeeIDs = []string{}
	s.projects = append(s.projects, p)
	created := cloneProject(p)
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionProjects, Action: ActionCreated, ID: created.ID, Data: created})
	return created, nil
}

// AssignEmployeeToProject implements project.ProjectRepository.
// The employee ID is neither deduplicated nor checked against the employee
// collection; only an unknown project is rejected.
func (s *Store) AssignEmployeeToProject(ctx context.Context, projectID, employeeID string) (project.Project, error) {
	s.mu.Lock()
	idx := s.projectIndex(projectID)
	if idx < 0 {
		s.mu.Unlock()
		return project.Project{}, project.ErrProjectNotFound
	}
	s.projects[idx].EmployeeIDs = append(s.projects[idx].EmployeeIDs, employeeID)
	updated := cloneProject(s.projects[idx])
	s.mu.Unlock()

	s.notify(ctx, Change{Collection: CollectionProjects, Action: ActionUpdated, ID: projectID, EmployeeID: employeeID, Data: updated})
	return updated, nil
}

// GetProject implements project.ProjectRepository.
func (s *Store) GetProject(ctx context.Context, id string) (project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return project.Project{}, project.ErrProjectNotFound
	}
	return cloneProject(s.projects[idx]), nil
}

// ListProjects implements project.ProjectRepository.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneProjects(s.projects), nil
}

// ListProjectsByEmployee implements project.ProjectRepository.
func (s *Store) ListProjectsByEmployee(ctx context.Context, employeeID string) ([]project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]project.Project, 0)
	for _, p := range s.projects {
		if p.HasEmployee(employeeID) {
			projects = append(projects, cloneProject(p))
		}
	}
	return projects, nil
}

// projectIndex must be called with s.mu held.
func (s *Store) projectIndex(id string) int {
	for i, p := range s.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
