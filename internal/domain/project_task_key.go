package domain

// ProjectTaskKey is one valid (project, task) combination. Equality is
// structural on the pair; there is no surrogate identity.
type ProjectTaskKey struct {
	ProjectID int64
	TaskID    int64
}

// IsEmpty reports whether either side of the pair is unassigned. An empty
// key is meaningless and must never be persisted.
func (k ProjectTaskKey) IsEmpty() bool {
	return k.ProjectID == IDNone || k.TaskID == IDNone
}

// KeysOf expands the task-id sets attached to the given projects into the
// flat list of keys they represent, skipping empty pairs.
func KeysOf(projects []Project) []ProjectTaskKey {
	var keys []ProjectTaskKey
	for _, project := range projects {
		for _, taskID := range project.TaskIDs {
			key := ProjectTaskKey{ProjectID: project.ID, TaskID: taskID}
			if key.IsEmpty() {
				continue
			}
			keys = append(keys, key)
		}
	}
	return keys
}
