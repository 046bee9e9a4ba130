package sqlite

import (
	"context"
	"database/sql"
	"time"

	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store defines the per-entity operations the reconciliation savers need.
// The same interface is served by the repository directly and by an open
// transaction, so a saver's whole diff-and-apply sequence can run under
// one transaction boundary.
type Store interface {
	// Projects
	QueryProjects(ctx context.Context) ([]*Project, error)
	InsertProjects(ctx context.Context, projects []*Project) error
	UpdateProjects(ctx context.Context, projects []*Project) error
	DeleteProjects(ctx context.Context, ids []int64) error

	// Project tasks
	QueryProjectTasks(ctx context.Context) ([]*ProjectTask, error)
	InsertProjectTasks(ctx context.Context, tasks []*ProjectTask) error
	UpdateProjectTasks(ctx context.Context, tasks []*ProjectTask) error
	DeleteProjectTasks(ctx context.Context, ids []int64) error

	// Association keys
	QueryProjectTaskKeys(ctx context.Context) ([]*ProjectTaskKey, error)
	InsertProjectTaskKeys(ctx context.Context, keys []*ProjectTaskKey) error
	DeleteProjectTaskKeys(ctx context.Context, keys []*ProjectTaskKey) error
	DeleteProjectTaskKeysByProjectIDs(ctx context.Context, projectIDs []int64) error
	DeleteProjectTaskKeysByTaskIDs(ctx context.Context, taskIDs []int64) error

	// Time records
	QueryTimeRecords(ctx context.Context) ([]*TimeRecord, error)
	QueryTimeRecordsByDate(ctx context.Context, start, finish time.Time) ([]*TimeRecord, error)
	InsertTimeRecords(ctx context.Context, records []*TimeRecord) error
	UpdateTimeRecords(ctx context.Context, records []*TimeRecord) error
	DeleteTimeRecords(ctx context.Context, ids []int64) error
	DeleteTimeRecordsByProjectIDs(ctx context.Context, projectIDs []int64) error
	DeleteTimeRecordsByTaskIDs(ctx context.Context, taskIDs []int64) error

	// Report records
	QueryReportRecords(ctx context.Context) ([]*ReportRecord, error)
	InsertReportRecords(ctx context.Context, records []*ReportRecord) error
	DeleteAllReportRecords(ctx context.Context) error
	DeleteReportRecordsByProjectIDs(ctx context.Context, projectIDs []int64) error
	DeleteReportRecordsByTaskIDs(ctx context.Context, taskIDs []int64) error

	// Profile
	GetUser(ctx context.Context) (*User, error)
	SaveUser(ctx context.Context, user *User) error
}

// Repository is a Store that also owns the database connection and the
// transaction boundary.
type Repository interface {
	Store

	// InTransaction runs fn against a transactional Store. The
	// transaction commits when fn returns nil and rolls back otherwise,
	// so no partial writes are ever visible.
	InTransaction(ctx context.Context, fn func(Store) error) error

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	store
	db *sql.DB
}

// store implements Store over either a *sql.DB or a *sql.Tx.
type store struct {
	db DBTX
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{store: store{db: db}, db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// InTransaction runs fn inside a single transaction.
func (r *SQLiteRepository) InTransaction(ctx context.Context, fn func(Store) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("begin transaction", err)
	}

	if err := fn(store{db: tx}); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("commit transaction", err)
	}
	return nil
}

// QueryProjects retrieves all projects
func (s store) QueryProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT id, name, description FROM projects ORDER BY name ASC`
	return queryMultiple(ctx, s.db, query, ScanProject, "projects")
}

// InsertProjects inserts a batch of projects with their server-assigned ids
func (s store) InsertProjects(ctx context.Context, projects []*Project) error {
	query := `INSERT INTO projects (id, name, description) VALUES (?, ?, ?)`
	for _, project := range projects {
		if err := execute(ctx, s.db, query, "insert project", project.ID, project.Name, project.Description); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProjects updates a batch of projects
func (s store) UpdateProjects(ctx context.Context, projects []*Project) error {
	query := `UPDATE projects SET name = ?, description = ? WHERE id = ?`
	for _, project := range projects {
		if err := execute(ctx, s.db, query, "update project", project.Name, project.Description, project.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProjects deletes the projects with the given ids
func (s store) DeleteProjects(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(ids)
	query := `DELETE FROM projects WHERE id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete projects", args...)
}

// QueryProjectTasks retrieves all tasks
func (s store) QueryProjectTasks(ctx context.Context) ([]*ProjectTask, error) {
	query := `SELECT id, name, description FROM project_tasks ORDER BY name ASC`
	return queryMultiple(ctx, s.db, query, ScanProjectTask, "project tasks")
}

// InsertProjectTasks inserts a batch of tasks with their server-assigned ids
func (s store) InsertProjectTasks(ctx context.Context, tasks []*ProjectTask) error {
	query := `INSERT INTO project_tasks (id, name, description) VALUES (?, ?, ?)`
	for _, task := range tasks {
		if err := execute(ctx, s.db, query, "insert project task", task.ID, task.Name, task.Description); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProjectTasks updates a batch of tasks
func (s store) UpdateProjectTasks(ctx context.Context, tasks []*ProjectTask) error {
	query := `UPDATE project_tasks SET name = ?, description = ? WHERE id = ?`
	for _, task := range tasks {
		if err := execute(ctx, s.db, query, "update project task", task.Name, task.Description, task.ID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProjectTasks deletes the tasks with the given ids
func (s store) DeleteProjectTasks(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(ids)
	query := `DELETE FROM project_tasks WHERE id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete project tasks", args...)
}

// QueryProjectTaskKeys retrieves all association keys
func (s store) QueryProjectTaskKeys(ctx context.Context) ([]*ProjectTaskKey, error) {
	query := `SELECT project_id, task_id FROM project_task_keys ORDER BY project_id, task_id`
	return queryMultiple(ctx, s.db, query, ScanProjectTaskKey, "project task keys")
}

// InsertProjectTaskKeys inserts a batch of association keys
func (s store) InsertProjectTaskKeys(ctx context.Context, keys []*ProjectTaskKey) error {
	query := `INSERT INTO project_task_keys (project_id, task_id) VALUES (?, ?)`
	for _, key := range keys {
		if err := execute(ctx, s.db, query, "insert project task key", key.ProjectID, key.TaskID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProjectTaskKeys deletes the given association keys
func (s store) DeleteProjectTaskKeys(ctx context.Context, keys []*ProjectTaskKey) error {
	query := `DELETE FROM project_task_keys WHERE project_id = ? AND task_id = ?`
	for _, key := range keys {
		if err := execute(ctx, s.db, query, "delete project task key", key.ProjectID, key.TaskID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteProjectTaskKeysByProjectIDs deletes all keys referencing the given projects
func (s store) DeleteProjectTaskKeysByProjectIDs(ctx context.Context, projectIDs []int64) error {
	if len(projectIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(projectIDs)
	query := `DELETE FROM project_task_keys WHERE project_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete keys by project", args...)
}

// DeleteProjectTaskKeysByTaskIDs deletes all keys referencing the given tasks
func (s store) DeleteProjectTaskKeysByTaskIDs(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(taskIDs)
	query := `DELETE FROM project_task_keys WHERE task_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete keys by task", args...)
}

const timeRecordColumns = `id, project_id, task_id, date, start_time, finish_time, duration, note, cost, status`

// QueryTimeRecords retrieves all time records
func (s store) QueryTimeRecords(ctx context.Context) ([]*TimeRecord, error) {
	query := `SELECT ` + timeRecordColumns + ` FROM time_records ORDER BY start_time ASC`
	return queryMultiple(ctx, s.db, query, ScanTimeRecord, "time records")
}

// QueryTimeRecordsByDate retrieves the time records whose date falls in [start, finish]
func (s store) QueryTimeRecordsByDate(ctx context.Context, start, finish time.Time) ([]*TimeRecord, error) {
	query := `SELECT ` + timeRecordColumns + ` FROM time_records WHERE date >= ? AND date <= ? ORDER BY start_time ASC`
	return queryMultiple(ctx, s.db, query, ScanTimeRecord, "time records",
		FormatTimeForDB(start), FormatTimeForDB(finish))
}

// InsertTimeRecords inserts a batch of time records with their server-assigned ids
func (s store) InsertTimeRecords(ctx context.Context, records []*TimeRecord) error {
	query := `
	INSERT INTO time_records (` + timeRecordColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		err := execute(ctx, s.db, query, "insert time record",
			record.ID, record.ProjectID, record.TaskID,
			FormatTimeForDB(record.Date),
			FormatTimePtrForDB(record.StartTime), FormatTimePtrForDB(record.FinishTime),
			FormatDurationForDB(record.Duration), record.Note, record.Cost, record.Status)
		if err != nil {
			return err
		}
	}
	return nil
}

// UpdateTimeRecords updates a batch of time records
func (s store) UpdateTimeRecords(ctx context.Context, records []*TimeRecord) error {
	query := `
	UPDATE time_records
	SET project_id = ?, task_id = ?, date = ?, start_time = ?, finish_time = ?,
	    duration = ?, note = ?, cost = ?, status = ?
	WHERE id = ?`
	for _, record := range records {
		err := execute(ctx, s.db, query, "update time record",
			record.ProjectID, record.TaskID,
			FormatTimeForDB(record.Date),
			FormatTimePtrForDB(record.StartTime), FormatTimePtrForDB(record.FinishTime),
			FormatDurationForDB(record.Duration), record.Note, record.Cost, record.Status,
			record.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteTimeRecords deletes the time records with the given ids
func (s store) DeleteTimeRecords(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(ids)
	query := `DELETE FROM time_records WHERE id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete time records", args...)
}

// DeleteTimeRecordsByProjectIDs deletes all time records referencing the given projects
func (s store) DeleteTimeRecordsByProjectIDs(ctx context.Context, projectIDs []int64) error {
	if len(projectIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(projectIDs)
	query := `DELETE FROM time_records WHERE project_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete time records by project", args...)
}

// DeleteTimeRecordsByTaskIDs deletes all time records referencing the given tasks
func (s store) DeleteTimeRecordsByTaskIDs(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(taskIDs)
	query := `DELETE FROM time_records WHERE task_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete time records by task", args...)
}

const reportRecordColumns = `id, project_id, task_id, date, start_time, finish_time, duration, note, cost`

// QueryReportRecords retrieves all report records
func (s store) QueryReportRecords(ctx context.Context) ([]*ReportRecord, error) {
	query := `SELECT ` + reportRecordColumns + ` FROM report_records ORDER BY id ASC`
	return queryMultiple(ctx, s.db, query, ScanReportRecord, "report records")
}

// InsertReportRecords inserts a batch of report records
func (s store) InsertReportRecords(ctx context.Context, records []*ReportRecord) error {
	query := `
	INSERT INTO report_records (` + reportRecordColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, record := range records {
		err := execute(ctx, s.db, query, "insert report record",
			record.ID, record.ProjectID, record.TaskID,
			FormatTimeForDB(record.Date),
			FormatTimePtrForDB(record.StartTime), FormatTimePtrForDB(record.FinishTime),
			FormatDurationForDB(record.Duration), record.Note, record.Cost)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteAllReportRecords clears the report snapshot
func (s store) DeleteAllReportRecords(ctx context.Context) error {
	return execute(ctx, s.db, `DELETE FROM report_records`, "delete report records")
}

// DeleteReportRecordsByProjectIDs deletes all report records referencing the given projects
func (s store) DeleteReportRecordsByProjectIDs(ctx context.Context, projectIDs []int64) error {
	if len(projectIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(projectIDs)
	query := `DELETE FROM report_records WHERE project_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete report records by project", args...)
}

// DeleteReportRecordsByTaskIDs deletes all report records referencing the given tasks
func (s store) DeleteReportRecordsByTaskIDs(ctx context.Context, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return nil
	}
	placeholders, args := idPlaceholders(taskIDs)
	query := `DELETE FROM report_records WHERE task_id IN (` + placeholders + `)`
	return execute(ctx, s.db, query, "delete report records by task", args...)
}

// GetUser retrieves the stored profile
func (s store) GetUser(ctx context.Context) (*User, error) {
	query := `SELECT id, username, email, display_name, roles FROM users WHERE id = 1`
	return querySingle(ctx, s.db, query, ScanUser, "user", "1")
}

// SaveUser upserts the single profile row
func (s store) SaveUser(ctx context.Context, user *User) error {
	query := `
	INSERT INTO users (id, username, email, display_name, roles)
	VALUES (1, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET username = excluded.username, email = excluded.email,
	    display_name = excluded.display_name, roles = excluded.roles`
	return execute(ctx, s.db, query, "save user", user.Username, user.Email, user.DisplayName, user.Roles)
}
