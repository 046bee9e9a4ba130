package sync

import (
	"strings"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/repository/sqlite"
)

// Conversions between the domain entities the parsers produce and the
// storage models the repository persists.

func projectModel(project domain.Project) *sqlite.Project {
	return &sqlite.Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
	}
}

func projectFromModel(model *sqlite.Project) domain.Project {
	return domain.Project{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}

func taskModel(task domain.ProjectTask) *sqlite.ProjectTask {
	return &sqlite.ProjectTask{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
	}
}

func taskFromModel(model *sqlite.ProjectTask) domain.ProjectTask {
	return domain.ProjectTask{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}

func keyModel(key domain.ProjectTaskKey) *sqlite.ProjectTaskKey {
	return &sqlite.ProjectTaskKey{
		ProjectID: key.ProjectID,
		TaskID:    key.TaskID,
	}
}

func recordModel(record domain.TimeRecord) *sqlite.TimeRecord {
	return &sqlite.TimeRecord{
		ID:         record.ID,
		ProjectID:  record.Project.ID,
		TaskID:     record.Task.ID,
		Date:       record.Date,
		StartTime:  record.Start,
		FinishTime: record.Finish,
		Duration:   record.Duration,
		Note:       record.Note,
		Cost:       record.Cost,
		Status:     int(record.Status),
	}
}

// recordFromModel rebuilds a domain record from storage, resolving the
// project and task references against the cached reference lists. A
// dangling reference yields a name-less entity rather than an error.
func recordFromModel(model *sqlite.TimeRecord, projects []domain.Project, tasks []domain.ProjectTask) domain.TimeRecord {
	record := domain.TimeRecord{
		ID:       model.ID,
		Date:     model.Date,
		Start:    model.StartTime,
		Finish:   model.FinishTime,
		Duration: model.Duration,
		Note:     model.Note,
		Cost:     model.Cost,
		Status:   domain.RecordStatus(model.Status),
	}
	if project := domain.FindProjectByID(projects, model.ProjectID); project != nil {
		record.Project = *project
	} else {
		record.Project = domain.Project{ID: model.ProjectID}
	}
	if task := domain.FindTaskByID(tasks, model.TaskID); task != nil {
		record.Task = *task
	} else {
		record.Task = domain.ProjectTask{ID: model.TaskID}
	}
	return record
}

func reportRecordModel(record domain.TimeRecord) *sqlite.ReportRecord {
	return &sqlite.ReportRecord{
		ID:         record.ID,
		ProjectID:  record.Project.ID,
		TaskID:     record.Task.ID,
		Date:       record.Date,
		StartTime:  record.Start,
		FinishTime: record.Finish,
		Duration:   record.TotalDuration(),
		Note:       record.Note,
		Cost:       record.Cost,
	}
}

func userModel(user domain.User) *sqlite.User {
	return &sqlite.User{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       strings.Join(user.Roles, ","),
	}
}

func userFromModel(model *sqlite.User) domain.User {
	user := domain.User{
		ID:          model.ID,
		Username:    model.Username,
		Email:       model.Email,
		DisplayName: model.DisplayName,
	}
	if model.Roles != "" {
		user.Roles = strings.Split(model.Roles, ",")
	}
	return user
}
