package domain

import "slices"

// Project represents a project on the remote timesheet server.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID          int64
	Name        string
	Description string

	// TaskIDs is the ordered set of task ids that may be logged
	// against this project, as published by the server page.
	TaskIDs []int64
}

// NewProject creates a new Project with the given name.
func NewProject(name string) Project {
	return Project{Name: name}
}

// IsEmpty reports whether the project carries no usable identity.
func (p Project) IsEmpty() bool {
	return p.ID == IDNone || p.Name == ""
}

// HasTask reports whether the given task id is valid for this project.
func (p Project) HasTask(taskID int64) bool {
	return slices.Contains(p.TaskIDs, taskID)
}

// WithTaskIDs returns a copy of the project with its task-id set replaced.
func (p Project) WithTaskIDs(taskIDs []int64) Project {
	p.TaskIDs = slices.Clone(taskIDs)
	return p
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}

// FindProjectByID returns the first project with the given id, or nil.
func FindProjectByID(projects []Project, id int64) *Project {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i]
		}
	}
	return nil
}

// FindProjectByName returns the first project with the given name, or nil.
// Name matching is the fallback identity for rows scraped from report
// tables, which show names but not ids.
func FindProjectByName(projects []Project, name string) *Project {
	for i := range projects {
		if projects[i].Name == name {
			return &projects[i]
		}
	}
	return nil
}
