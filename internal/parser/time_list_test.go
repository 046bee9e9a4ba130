package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
)

func TestParseTimeListPage(t *testing.T) {
	page, err := ParseTimeListPage(loadPage(t, "time_list.html"))
	require.NoError(t, err)

	wantDate := time.Date(2018, time.September, 17, 0, 0, 0, 0, time.Local)
	assert.True(t, page.Date.Equal(wantDate))

	// Nothing selected in the entry form.
	assert.True(t, page.Record.Project.IsEmpty())
	assert.True(t, page.Record.Task.IsEmpty())

	// The row without an edit link has no server identity and is dropped.
	require.Len(t, page.Records, 2)

	first := page.Records[0]
	assert.Equal(t, int64(289585), first.ID)
	assert.Equal(t, int64(486), first.Project.ID, "resolved against the dropdown")
	assert.Equal(t, "Website", first.Project.Name)
	assert.Equal(t, int64(1), first.Task.ID)
	assert.Equal(t, 4*time.Hour+2*time.Minute, first.Duration)
	assert.Equal(t, "morning work", first.Note)
	assert.Equal(t, domain.StatusCurrent, first.Status)
	require.NotNil(t, first.Start)
	require.NotNil(t, first.Finish)

	second := page.Records[1]
	assert.Equal(t, int64(289586), second.ID)
	assert.Nil(t, second.Finish, "still running")
	assert.Zero(t, second.Duration)
}

func TestParseTimeListTotals(t *testing.T) {
	page, err := ParseTimeListPage(loadPage(t, "time_list.html"))
	require.NoError(t, err)

	assert.Equal(t, 8*time.Hour+30*time.Minute, page.Totals.Daily)
	assert.Equal(t, 37*time.Hour+15*time.Minute, page.Totals.Weekly)
	assert.Equal(t, 120*time.Hour, page.Totals.Monthly)
	assert.Equal(t, domain.TotalUnknown, page.Totals.Remaining, "unparsable bucket stays unknown, not zero")
}

func TestParseTimeListPageLoginRedirect(t *testing.T) {
	page, err := ParseTimeListPage(loadPage(t, "login.html"))
	require.NoError(t, err)

	assert.Empty(t, page.Records)
	assert.Empty(t, page.Projects)
	assert.Equal(t, domain.NewTimeTotals(), page.Totals)
}

func TestParseTimeListPageBadRecordLink(t *testing.T) {
	html := `
	<form name="timeRecordForm">
	<select name="project"><option value="486">Website</option></select>
	<select name="task"><option value="1">Development</option></select>
	<input name="date" value="2018-09-17">
	</form>
	<div class="record-list">
	<table>
	<tr><th>Project</th><th>Task</th><th>Start</th></tr>
	<tr>
	<td>Website</td><td>Development</td><td>9:00</td><td>10:00</td><td>1:00</td><td></td>
	<td><a href="time_edit.php?id=borked">Edit</a></td>
	</tr>
	</table>
	</div>`

	_, err := ParseTimeListPage(html)
	require.Error(t, err)
}
