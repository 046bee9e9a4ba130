package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
)

func TestDecodeAssociationsTaskIDs(t *testing.T) {
	script := `
	task_ids[486] = "1,2";
	task_ids[487] = "2";
	task_ids[999] = "not,numbers";
	garbage line
	`

	associations := decodeAssociations(script, taskIDsPattern)
	require.Len(t, associations, 3)
	assert.Equal(t, Association{ProjectID: 486, TaskIDs: []int64{1, 2}}, associations[0])
	assert.Equal(t, Association{ProjectID: 487, TaskIDs: []int64{2}}, associations[1])
	assert.Empty(t, associations[2].TaskIDs, "bad tokens are dropped, not fatal")
}

func TestDecodeAssociationsObjTasks(t *testing.T) {
	script := `
	project_property = project_prefix + 486;
	  obj_tasks[project_property] = "20,7,5";
	project_property = project_prefix + 487;
	  obj_tasks[project_property] = "5";
	`

	associations := decodeAssociations(script, objTasksPattern)
	require.Len(t, associations, 2)
	assert.Equal(t, Association{ProjectID: 486, TaskIDs: []int64{20, 7, 5}}, associations[0])
	assert.Equal(t, Association{ProjectID: 487, TaskIDs: []int64{5}}, associations[1])
}

func TestAttachTasks(t *testing.T) {
	projects := []domain.Project{
		{ID: 486, Name: "Website", TaskIDs: []int64{9}},
		{ID: 487, Name: "Mobile App", TaskIDs: []int64{9}},
	}
	tasks := []domain.ProjectTask{
		{ID: 1, Name: "Development"},
		{ID: 2, Name: "Meetings"},
	}
	associations := []Association{
		{ProjectID: 486, TaskIDs: []int64{1, 2, 77}},
	}

	attached := attachTasks(projects, tasks, associations)

	assert.Equal(t, []int64{1, 2}, attached[0].TaskIDs, "unknown task ids are dropped")
	assert.Empty(t, attached[1].TaskIDs, "stale attachment is cleared, not kept")
	assert.Equal(t, []int64{9}, projects[0].TaskIDs, "input untouched")
}

func TestFindScript(t *testing.T) {
	doc, err := parseDocument(`
	<script>var unrelated = 1;</script>
	<script>
	var task_ids = new Array();
	task_ids[486] = "1";
	// Prepare an array of task names.
	task_names[1] = "Development";
	</script>`)
	require.NoError(t, err)

	slice := findScript(doc, scriptTaskIDsStart, scriptTaskNamesEnd)
	assert.Contains(t, slice, `task_ids[486] = "1";`)
	assert.NotContains(t, slice, "task_names")
	assert.NotContains(t, slice, "unrelated")

	assert.Empty(t, findScript(doc, scriptObjTasksStart, scriptTaskNamesEnd))
}
