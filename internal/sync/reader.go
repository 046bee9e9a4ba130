package sync

import (
	"context"
	"time"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/repository/sqlite"
)

// Reader loads domain views of the mirror for display.
type Reader struct {
	repo sqlite.Repository
}

// NewReader creates a new reader backed by the given repository.
func NewReader(repo sqlite.Repository) *Reader {
	return &Reader{repo: repo}
}

// Projects returns the cached projects with their associated task ids
// attached.
func (r *Reader) Projects(ctx context.Context) ([]domain.Project, error) {
	models, err := r.repo.QueryProjects(ctx)
	if err != nil {
		return nil, err
	}
	keys, err := r.repo.QueryProjectTaskKeys(ctx)
	if err != nil {
		return nil, err
	}

	taskIDs := make(map[int64][]int64)
	for _, key := range keys {
		taskIDs[key.ProjectID] = append(taskIDs[key.ProjectID], key.TaskID)
	}

	projects := make([]domain.Project, 0, len(models))
	for _, model := range models {
		project := projectFromModel(model)
		project.TaskIDs = taskIDs[project.ID]
		projects = append(projects, project)
	}
	return projects, nil
}

// Tasks returns the cached tasks.
func (r *Reader) Tasks(ctx context.Context) ([]domain.ProjectTask, error) {
	models, err := r.repo.QueryProjectTasks(ctx)
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.ProjectTask, 0, len(models))
	for _, model := range models {
		tasks = append(tasks, taskFromModel(model))
	}
	return tasks, nil
}

// Records returns the cached time records with project and task
// references resolved. When date is non-zero only that day's records are
// returned.
func (r *Reader) Records(ctx context.Context, date time.Time) ([]domain.TimeRecord, error) {
	projects, err := r.Projects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := r.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	var models []*sqlite.TimeRecord
	if date.IsZero() {
		models, err = r.repo.QueryTimeRecords(ctx)
	} else {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		models, err = r.repo.QueryTimeRecordsByDate(ctx, dayStart, dayStart.Add(24*time.Hour-time.Second))
	}
	if err != nil {
		return nil, err
	}

	records := make([]domain.TimeRecord, 0, len(models))
	for _, model := range models {
		records = append(records, recordFromModel(model, projects, tasks))
	}
	return records, nil
}

// User returns the cached profile.
func (r *Reader) User(ctx context.Context) (domain.User, error) {
	model, err := r.repo.GetUser(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return userFromModel(model), nil
}
