package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/parser"
	"timesheet-sync/internal/repository/sqlite"
)

var (
	projectWebsite = domain.Project{ID: 486, Name: "Website", TaskIDs: []int64{1}}
	dayOne         = time.Date(2018, time.September, 17, 0, 0, 0, 0, time.Local)
	dayTwo         = time.Date(2018, time.September, 18, 0, 0, 0, 0, time.Local)
)

func listRecord(id int64, date time.Time, startHour int) domain.TimeRecord {
	start := date.Add(time.Duration(startHour) * time.Hour)
	finish := start.Add(time.Hour)
	return domain.TimeRecord{
		ID:      id,
		Project: projectWebsite,
		Task:    taskDev,
		Date:    date,
		Start:   &start,
		Finish:  &finish,
		Status:  domain.StatusCurrent,
	}
}

func listPage(date time.Time, records ...domain.TimeRecord) *parser.TimeListPage {
	return &parser.TimeListPage{
		Projects: []domain.Project{projectWebsite},
		Tasks:    []domain.ProjectTask{taskDev},
		Date:     date,
		Records:  records,
		Totals:   domain.NewTimeTotals(),
	}
}

func TestTimeListSaverReplacesOneDay(t *testing.T) {
	repo := setupRepo(t)
	saver := NewTimeListSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, listPage(dayOne,
		listRecord(1, dayOne, 9),
		listRecord(2, dayOne, 11))))
	require.NoError(t, saver.Save(ctx, listPage(dayTwo,
		listRecord(3, dayTwo, 9))))

	// Day one is refetched with record 1 gone and record 4 new.
	require.NoError(t, saver.Save(ctx, listPage(dayOne,
		listRecord(2, dayOne, 11),
		listRecord(4, dayOne, 14))))

	records, err := repo.QueryTimeRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	ids := make(map[int64]bool)
	for _, record := range records {
		ids[record.ID] = true
	}
	assert.False(t, ids[1], "record dropped from the page is deleted")
	assert.True(t, ids[2])
	assert.True(t, ids[3], "other days are untouched")
	assert.True(t, ids[4])
}

func TestTimeListSaverMergesMatchedRecords(t *testing.T) {
	repo := setupRepo(t)
	saver := NewTimeListSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, listPage(dayOne, listRecord(1, dayOne, 9))))

	// Cost is known only locally; the list page never shows it.
	stored, err := repo.QueryTimeRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	stored[0].Cost = 25.50
	require.NoError(t, repo.UpdateTimeRecords(ctx, stored))

	moved := listRecord(1, dayOne, 10)
	moved.Note = "moved later"
	require.NoError(t, saver.Save(ctx, listPage(dayOne, moved)))

	stored, err = repo.QueryTimeRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 25.50, stored[0].Cost, "cached cost survives the merge")
	assert.Equal(t, "moved later", stored[0].Note)
	require.NotNil(t, stored[0].StartTime)
	assert.Equal(t, 10, stored[0].StartTime.Hour())
}

func TestTimeListSaverNeverInsertsEmptyRecords(t *testing.T) {
	repo := setupRepo(t)
	saver := NewTimeListSaver(repo)
	ctx := context.Background()

	empty := domain.TimeRecord{ID: 9, Date: dayOne}
	draft := listRecord(0, dayOne, 9)

	require.NoError(t, saver.Save(ctx, listPage(dayOne, empty, draft, listRecord(1, dayOne, 11))))

	records, err := repo.QueryTimeRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
}

func TestTimeListSaverSkipsEmptyPage(t *testing.T) {
	repo := setupRepo(t)
	saver := NewTimeListSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, listPage(dayOne, listRecord(1, dayOne, 9))))

	// Login page parses to a page with no projects.
	require.NoError(t, saver.Save(ctx, &parser.TimeListPage{Date: dayOne}))

	records, err := repo.QueryTimeRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTimeListSaverReconcilesReferenceData(t *testing.T) {
	repo := setupRepo(t)
	saver := NewTimeListSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, listPage(dayOne)))

	projects, err := repo.QueryProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Website", projects[0].Name)

	keys, err := repo.QueryProjectTaskKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*sqlite.ProjectTaskKey{{ProjectID: 486, TaskID: 1}}, keys)
}
