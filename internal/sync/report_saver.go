package sync

import (
	"context"
	gosync "sync"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/logging"
	"timesheet-sync/internal/parser"
	"timesheet-sync/internal/repository/sqlite"
)

// ReportSaver replaces the report snapshot with the records of a parsed
// report page. Report rows carry no server identity and no dropdowns, so
// there is nothing to diff: the whole snapshot is rewritten on every save.
type ReportSaver struct {
	repo sqlite.Repository
	mu   gosync.Mutex
}

// NewReportSaver creates a new report saver backed by the given repository.
func NewReportSaver(repo sqlite.Repository) *ReportSaver {
	return &ReportSaver{repo: repo}
}

// Save replaces the stored report records with the page's. Name-only
// project and task references are resolved against the cached reference
// data so the snapshot joins cleanly; unresolved names keep a zero id.
func (s *ReportSaver) Save(ctx context.Context, page *parser.ReportPage) error {
	if page == nil || len(page.Records) == 0 {
		logging.Debugln("report save skipped: empty page")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.InTransaction(ctx, func(store sqlite.Store) error {
		cachedProjects, err := store.QueryProjects(ctx)
		if err != nil {
			return err
		}
		cachedTasks, err := store.QueryProjectTasks(ctx)
		if err != nil {
			return err
		}
		projects := make([]domain.Project, 0, len(cachedProjects))
		for _, model := range cachedProjects {
			projects = append(projects, projectFromModel(model))
		}
		tasks := make([]domain.ProjectTask, 0, len(cachedTasks))
		for _, model := range cachedTasks {
			tasks = append(tasks, taskFromModel(model))
		}

		if err := store.DeleteAllReportRecords(ctx); err != nil {
			return err
		}

		inserts := make([]*sqlite.ReportRecord, 0, len(page.Records))
		for _, record := range page.Records {
			inserts = append(inserts, reportRecordModel(resolveReferences(record, projects, tasks)))
		}
		logging.Debugf("report snapshot replaced: %d records\n", len(inserts))
		return store.InsertReportRecords(ctx, inserts)
	})
}

// resolveReferences swaps a record's name-only project and task for the
// cached entities of the same name, when they exist.
func resolveReferences(record domain.TimeRecord, projects []domain.Project, tasks []domain.ProjectTask) domain.TimeRecord {
	if record.Project.ID == domain.IDNone && record.Project.Name != "" {
		if known := domain.FindProjectByName(projects, record.Project.Name); known != nil {
			record.Project = *known
		}
	}
	if record.Task.ID == domain.IDNone && record.Task.Name != "" {
		if known := domain.FindTaskByName(tasks, record.Task.Name); known != nil {
			record.Task = *known
		}
	}
	return record
}
