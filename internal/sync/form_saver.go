package sync

import (
	"context"
	gosync "sync"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/logging"
	"timesheet-sync/internal/repository/sqlite"
)

// FormSaver reconciles the project and task reference data embedded in a
// parsed page into the local mirror. Every page carrying the project and
// task dropdowns goes through it.
//
// Reconciliation is a full replace by identity: rows the page no longer
// lists are deleted together with their dependents, new rows are
// inserted, and rows present on both sides are overwritten with the
// page's fields. Each save runs in a single transaction, serialized by a
// saver-level mutex.
type FormSaver struct {
	repo sqlite.Repository
	mu   gosync.Mutex
}

// NewFormSaver creates a new form saver backed by the given repository.
func NewFormSaver(repo sqlite.Repository) *FormSaver {
	return &FormSaver{repo: repo}
}

// Save reconciles the parsed projects and tasks into the mirror. A page
// with no projects parsed saves nothing; a login page served in place of
// the expected one must not wipe the cache.
func (s *FormSaver) Save(ctx context.Context, projects []domain.Project, tasks []domain.ProjectTask) error {
	if len(projects) == 0 {
		logging.Debugln("form save skipped: no projects parsed")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.InTransaction(ctx, func(store sqlite.Store) error {
		return reconcileReferenceData(ctx, store, projects, tasks)
	})
}

// reconcileReferenceData diffs the parsed projects, tasks and association
// keys against the cached rows and applies deletes, inserts and updates
// in that order. Dependent rows cascade before their parents are removed
// so no row is ever left pointing at a deleted project or task.
func reconcileReferenceData(ctx context.Context, store sqlite.Store, projects []domain.Project, tasks []domain.ProjectTask) error {
	existingProjects, err := store.QueryProjects(ctx)
	if err != nil {
		return err
	}
	existingTasks, err := store.QueryProjectTasks(ctx)
	if err != nil {
		return err
	}
	existingKeys, err := store.QueryProjectTaskKeys(ctx)
	if err != nil {
		return err
	}

	cachedProjects := make(map[int64]*sqlite.Project, len(existingProjects))
	for _, project := range existingProjects {
		cachedProjects[project.ID] = project
	}
	cachedTasks := make(map[int64]*sqlite.ProjectTask, len(existingTasks))
	for _, task := range existingTasks {
		cachedTasks[task.ID] = task
	}
	cachedKeys := make(map[domain.ProjectTaskKey]*sqlite.ProjectTaskKey, len(existingKeys))
	for _, key := range existingKeys {
		cachedKeys[domain.ProjectTaskKey{ProjectID: key.ProjectID, TaskID: key.TaskID}] = key
	}

	parsedProjects := make(map[int64]domain.Project, len(projects))
	for _, project := range projects {
		if project.IsEmpty() {
			continue
		}
		parsedProjects[project.ID] = project
	}
	parsedTasks := make(map[int64]domain.ProjectTask, len(tasks))
	for _, task := range tasks {
		if task.IsEmpty() {
			continue
		}
		parsedTasks[task.ID] = task
	}
	parsedKeys := make(map[domain.ProjectTaskKey]struct{})
	for _, key := range domain.KeysOf(projects) {
		parsedKeys[key] = struct{}{}
	}

	obsoleteProjects, addedProjects, retainedProjects := partition(cachedProjects, parsedProjects)
	obsoleteTasks, addedTasks, retainedTasks := partition(cachedTasks, parsedTasks)
	obsoleteKeys, addedKeys, _ := partition(cachedKeys, parsedKeys)

	logging.Debugf("reconcile reference data: projects -%d +%d ~%d, tasks -%d +%d ~%d, keys -%d +%d\n",
		len(obsoleteProjects), len(addedProjects), len(retainedProjects),
		len(obsoleteTasks), len(addedTasks), len(retainedTasks),
		len(obsoleteKeys), len(addedKeys))

	// Deletes, dependents first.
	if err := deleteKeys(ctx, store, obsoleteKeys); err != nil {
		return err
	}
	if len(obsoleteProjects) > 0 {
		ids := sortIDs(obsoleteProjects)
		if err := store.DeleteProjectTaskKeysByProjectIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteTimeRecordsByProjectIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteReportRecordsByProjectIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteProjects(ctx, ids); err != nil {
			return err
		}
	}
	if len(obsoleteTasks) > 0 {
		ids := sortIDs(obsoleteTasks)
		if err := store.DeleteProjectTaskKeysByTaskIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteTimeRecordsByTaskIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteReportRecordsByTaskIDs(ctx, ids); err != nil {
			return err
		}
		if err := store.DeleteProjectTasks(ctx, ids); err != nil {
			return err
		}
	}

	// Inserts, parents first.
	inserts := make([]*sqlite.Project, 0, len(addedProjects))
	for _, id := range sortIDs(addedProjects) {
		inserts = append(inserts, projectModel(parsedProjects[id]))
	}
	if err := store.InsertProjects(ctx, inserts); err != nil {
		return err
	}
	taskInserts := make([]*sqlite.ProjectTask, 0, len(addedTasks))
	for _, id := range sortIDs(addedTasks) {
		taskInserts = append(taskInserts, taskModel(parsedTasks[id]))
	}
	if err := store.InsertProjectTasks(ctx, taskInserts); err != nil {
		return err
	}
	keyInserts := make([]*sqlite.ProjectTaskKey, 0, len(addedKeys))
	for _, key := range addedKeys {
		keyInserts = append(keyInserts, keyModel(key))
	}
	if err := store.InsertProjectTaskKeys(ctx, keyInserts); err != nil {
		return err
	}

	// Updates overwrite the cached fields with the page's.
	updates := make([]*sqlite.Project, 0, len(retainedProjects))
	for _, id := range sortIDs(retainedProjects) {
		updates = append(updates, projectModel(parsedProjects[id]))
	}
	if err := store.UpdateProjects(ctx, updates); err != nil {
		return err
	}
	taskUpdates := make([]*sqlite.ProjectTask, 0, len(retainedTasks))
	for _, id := range sortIDs(retainedTasks) {
		taskUpdates = append(taskUpdates, taskModel(parsedTasks[id]))
	}
	return store.UpdateProjectTasks(ctx, taskUpdates)
}

func deleteKeys(ctx context.Context, store sqlite.Store, keys []domain.ProjectTaskKey) error {
	if len(keys) == 0 {
		return nil
	}
	models := make([]*sqlite.ProjectTaskKey, 0, len(keys))
	for _, key := range keys {
		models = append(models, keyModel(key))
	}
	return store.DeleteProjectTaskKeys(ctx, models)
}
