package domain

// ProjectTask represents a task on the remote timesheet server. Tasks are
// independent entities; projects reference them through ProjectTaskKey pairs.
type ProjectTask struct {
	ID          int64
	Name        string
	Description string
}

// NewProjectTask creates a new ProjectTask with the given name.
func NewProjectTask(name string) ProjectTask {
	return ProjectTask{Name: name}
}

// IsEmpty reports whether the task carries no usable identity.
func (t ProjectTask) IsEmpty() bool {
	return t.ID == IDNone || t.Name == ""
}

// String returns the task name for display purposes.
func (t ProjectTask) String() string {
	return t.Name
}

// FindTaskByID returns the first task with the given id, or nil.
func FindTaskByID(tasks []ProjectTask, id int64) *ProjectTask {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// FindTaskByName returns the first task with the given name, or nil.
func FindTaskByName(tasks []ProjectTask, name string) *ProjectTask {
	for i := range tasks {
		if tasks[i].Name == name {
			return &tasks[i]
		}
	}
	return nil
}
