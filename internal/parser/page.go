package parser

import (
	"time"

	"timesheet-sync/internal/domain"
)

// Pages are immutable bundles of the records extracted from one HTML
// response, plus the project/task lists embedded in the page and the
// error banner text, if any. An empty page (zero record, no projects)
// means nothing usable was parsed; the most common cause is a login page
// rendered instead of the expected one.

// TimeEditPage is the parsed time-entry edit form.
type TimeEditPage struct {
	Record       domain.TimeRecord
	Projects     []domain.Project
	Tasks        []domain.ProjectTask
	Date         time.Time
	ErrorMessage string
}

// TimeListPage is the parsed per-day time-entry list: the edit form plus
// the day's records table and totals footer.
type TimeListPage struct {
	Record       domain.TimeRecord
	Projects     []domain.Project
	Tasks        []domain.ProjectTask
	Date         time.Time
	Records      []domain.TimeRecord
	Totals       domain.TimeTotals
	ErrorMessage string
}

// ReportFormPage is the parsed report filter form.
type ReportFormPage struct {
	Filter       domain.ReportFilter
	Projects     []domain.Project
	Tasks        []domain.ProjectTask
	ErrorMessage string
}

// ReportPage is the parsed report results table. Projects and Tasks
// accumulate the name-only entities discovered in the rows.
type ReportPage struct {
	Records  []domain.TimeRecord
	Projects []domain.Project
	Tasks    []domain.ProjectTask
	Totals   domain.ReportTotals
}

// ProjectsPage is the parsed projects listing.
type ProjectsPage struct {
	Projects []domain.Project
}

// ProjectTasksPage is the parsed project-tasks listing.
type ProjectTasksPage struct {
	Tasks []domain.ProjectTask
}

// ProfilePage is the parsed profile edit form.
type ProfilePage struct {
	User         domain.User
	ErrorMessage string
}

// UsersPage is the parsed users listing.
type UsersPage struct {
	Users []domain.User
}
