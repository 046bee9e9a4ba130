package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/parser"
)

const timeEditPageHTML = `
<html>
<head>
<script>
var task_ids = new Array();
task_ids[486] = "1";
// Prepare an array of task names.
</script>
</head>
<body>
<form name="timeRecordForm">
<select name="project">
<option value="">--- select ---</option>
<option value="486" selected>Website</option>
</select>
<select name="task">
<option value="">--- select ---</option>
<option value="1" selected>Development</option>
</select>
<input type="hidden" name="id" value="289585">
<input type="text" name="date" value="2018-09-17">
<input type="text" name="start" value="8:58">
<input type="text" name="finish" value="18:32">
</form>
</body>
</html>`

func TestParsePage_Routing(t *testing.T) {
	tests := []struct {
		kind string
		want interface{}
	}{
		{pageTimeEdit, &parser.TimeEditPage{}},
		{pageTimeList, &parser.TimeListPage{}},
		{pageReportForm, &parser.ReportFormPage{}},
		{pageReport, &parser.ReportPage{}},
		{pageProjects, &parser.ProjectsPage{}},
		{pageTasks, &parser.ProjectTasksPage{}},
		{pageProfile, &parser.ProfilePage{}},
		{pageUsers, &parser.UsersPage{}},
	}

	// A page without the expected form parses to an empty page for every
	// kind, never an error.
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			page, err := parsePage(tt.kind, "<html><body></body></html>")
			require.NoError(t, err)
			assert.IsType(t, tt.want, page)
		})
	}
}

func TestParsePage_UnknownKind(t *testing.T) {
	_, err := parsePage("sessions", "<html></html>")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestParsePage_TimeEdit(t *testing.T) {
	page, err := parsePage(pageTimeEdit, timeEditPageHTML)
	require.NoError(t, err)

	edit, ok := page.(*parser.TimeEditPage)
	require.True(t, ok)
	assert.Equal(t, int64(289585), edit.Record.ID)
	assert.Equal(t, int64(486), edit.Record.Project.ID)
	assert.Equal(t, int64(1), edit.Record.Task.ID)
}
