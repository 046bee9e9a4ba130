package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/repository/sqlite"
	"timesheet-sync/internal/sync"
)

func setupSyncRepo(t *testing.T) sqlite.Repository {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "tsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestSyncPage_TimeEdit(t *testing.T) {
	repo := setupSyncRepo(t)
	ctx := context.Background()

	err := syncPage(ctx, repo, pageTimeEdit, timeEditPageHTML)
	require.NoError(t, err)

	reader := sync.NewReader(repo)
	projects, err := reader.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(486), projects[0].ID)
	assert.Equal(t, "Website", projects[0].Name)
	assert.Equal(t, []int64{1}, projects[0].TaskIDs)

	tasks, err := reader.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Development", tasks[0].Name)
}

func TestSyncPage_LoginRedirectLeavesMirrorIntact(t *testing.T) {
	repo := setupSyncRepo(t)
	ctx := context.Background()

	require.NoError(t, syncPage(ctx, repo, pageTimeEdit, timeEditPageHTML))

	// An unauthenticated response carries no form; the cached reference
	// data must survive it.
	err := syncPage(ctx, repo, pageTimeEdit, "<html><body></body></html>")
	require.NoError(t, err)

	projects, err := sync.NewReader(repo).Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}

func TestSyncPage_UnsupportedKinds(t *testing.T) {
	repo := setupSyncRepo(t)
	ctx := context.Background()

	for _, kind := range []string{pageProjects, pageTasks, pageUsers, "sessions"} {
		t.Run(kind, func(t *testing.T) {
			err := syncPage(ctx, repo, kind, "<html></html>")
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
		})
	}
}
