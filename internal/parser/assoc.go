package parser

import (
	"regexp"
	"strconv"
	"strings"

	"timesheet-sync/internal/domain"
)

// The two shapes in which server templates encode project-task
// associations. Time pages assign into a plain array; report pages build a
// property name first.
var (
	taskIDsPattern  = regexp.MustCompile(`task_ids\[(\d+)\] = "(.+)";`)
	objTasksPattern = regexp.MustCompile(`project_property = project_prefix [+] (\d+);\s+obj_tasks\[project_property\] = "(.+)";`)
)

// Association is one decoded (project, task-ids) pair.
type Association struct {
	ProjectID int64
	TaskIDs   []int64
}

// decodeAssociations extracts associations from a script slice using the
// given pattern. Malformed entries are skipped, not fatal: the server
// template is not guaranteed stable across versions, and a missing
// association is recoverable whereas aborting the whole page is not.
func decodeAssociations(scriptText string, pattern *regexp.Regexp) []Association {
	var associations []Association
	for _, match := range pattern.FindAllStringSubmatch(scriptText, -1) {
		projectID, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		var taskIDs []int64
		for _, token := range strings.Split(match[2], ",") {
			taskID, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
			if err != nil {
				continue
			}
			taskIDs = append(taskIDs, taskID)
		}
		associations = append(associations, Association{
			ProjectID: projectID,
			TaskIDs:   taskIDs,
		})
	}
	return associations
}

// attachTasks returns a copy of projects with each project's task-id set
// replaced by its decoded association (or cleared when none matched), so a
// re-parse of the same page is idempotent. Task ids not present in the
// page's task list are dropped.
func attachTasks(projects []domain.Project, tasks []domain.ProjectTask, associations []Association) []domain.Project {
	known := make(map[int64]bool, len(tasks))
	for _, task := range tasks {
		known[task.ID] = true
	}

	byProject := make(map[int64][]int64, len(associations))
	for _, assoc := range associations {
		var taskIDs []int64
		for _, taskID := range assoc.TaskIDs {
			if known[taskID] {
				taskIDs = append(taskIDs, taskID)
			}
		}
		byProject[assoc.ProjectID] = taskIDs
	}

	attached := make([]domain.Project, len(projects))
	for i, project := range projects {
		attached[i] = project.WithTaskIDs(byProject[project.ID])
	}
	return attached
}
