package sqlite

import "time"

// Storage models for the local mirror. Identities are server-assigned:
// the mirror never invents ids for reference entities.

// Project represents a row of the projects table.
type Project struct {
	ID          int64
	Name        string
	Description string
}

// ProjectTask represents a row of the project_tasks table.
type ProjectTask struct {
	ID          int64
	Name        string
	Description string
}

// ProjectTaskKey represents a row of the project_task_keys table. The
// (project_id, task_id) pair is the whole identity.
type ProjectTaskKey struct {
	ProjectID int64
	TaskID    int64
}

// TimeRecord represents a row of the time_records table.
type TimeRecord struct {
	ID         int64
	ProjectID  int64
	TaskID     int64
	Date       time.Time
	StartTime  *time.Time
	FinishTime *time.Time
	Duration   time.Duration
	Note       string
	Cost       float64
	Status     int
}

// ReportRecord represents a row of the report_records table. Report rows
// share the time-record shape but are a separate snapshot, replaced
// wholesale on every report parse.
type ReportRecord struct {
	ID         int64
	ProjectID  int64
	TaskID     int64
	Date       time.Time
	StartTime  *time.Time
	FinishTime *time.Time
	Duration   time.Duration
	Note       string
	Cost       float64
}

// User represents the single row of the users table holding the profile
// of the logged-in account.
type User struct {
	ID          int64
	Username    string
	Email       string
	DisplayName string
	Roles       string
}
