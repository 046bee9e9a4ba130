package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/parser"
)

func reportRecord(id int64, projectName string, hours time.Duration) domain.TimeRecord {
	date := time.Date(2018, time.September, 17, 0, 0, 0, 0, time.Local)
	return domain.TimeRecord{
		ID:       id,
		Project:  domain.NewProject(projectName),
		Task:     domain.NewProjectTask("Development"),
		Date:     date,
		Duration: hours,
		Status:   domain.StatusCurrent,
	}
}

func TestReportSaverReplacesSnapshot(t *testing.T) {
	repo := setupRepo(t)
	saver := NewReportSaver(repo)
	ctx := context.Background()

	first := &parser.ReportPage{Records: []domain.TimeRecord{
		reportRecord(1, "Website", 4*time.Hour),
		reportRecord(2, "Mobile App", 2*time.Hour),
	}}
	require.NoError(t, saver.Save(ctx, first))

	second := &parser.ReportPage{Records: []domain.TimeRecord{
		reportRecord(1, "Website", 6 * time.Hour),
	}}
	require.NoError(t, saver.Save(ctx, second))

	stored, err := repo.QueryReportRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1, "snapshot is replaced wholesale")
	assert.Equal(t, 6*time.Hour, stored[0].Duration)
}

func TestReportSaverResolvesReferencesByName(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, NewFormSaver(repo).Save(ctx,
		[]domain.Project{{ID: 486, Name: "Website"}},
		[]domain.ProjectTask{{ID: 1, Name: "Development"}}))

	page := &parser.ReportPage{Records: []domain.TimeRecord{
		reportRecord(1, "Website", 4*time.Hour),
		reportRecord(2, "Unknown Project", time.Hour),
	}}
	require.NoError(t, NewReportSaver(repo).Save(ctx, page))

	stored, err := repo.QueryReportRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, int64(486), stored[0].ProjectID, "name resolved against the cache")
	assert.Equal(t, int64(1), stored[0].TaskID)
	assert.Equal(t, domain.IDNone, stored[1].ProjectID, "unknown names keep a zero id")
}

func TestReportSaverSkipsEmptyPage(t *testing.T) {
	repo := setupRepo(t)
	saver := NewReportSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, &parser.ReportPage{Records: []domain.TimeRecord{
		reportRecord(1, "Website", 4 * time.Hour),
	}}))

	require.NoError(t, saver.Save(ctx, &parser.ReportPage{}))

	stored, err := repo.QueryReportRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1, "empty page does not clear the snapshot")
}
