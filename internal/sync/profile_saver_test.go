package sync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/parser"
)

func TestProfileSaverUpserts(t *testing.T) {
	repo := setupRepo(t)
	saver := NewProfileSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, &parser.ProfilePage{User: domain.User{
		Username:    "anna",
		DisplayName: "Anna Developer",
		Roles:       []string{"manager", "user"},
	}}))
	require.NoError(t, saver.Save(ctx, &parser.ProfilePage{User: domain.User{
		Username: "anna",
		Email:    "anna@example.com",
	}}))

	user, err := NewReader(repo).User(ctx)
	require.NoError(t, err)
	assert.Equal(t, "anna", user.Username)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.Empty(t, user.Roles)
}

func TestProfileSaverSkipsEmptyPage(t *testing.T) {
	repo := setupRepo(t)
	saver := NewProfileSaver(repo)
	ctx := context.Background()

	require.NoError(t, saver.Save(ctx, &parser.ProfilePage{}))

	_, err := NewReader(repo).User(ctx)
	assert.Error(t, err, "nothing was saved")
}

func TestReaderRecordsResolveReferences(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, NewTimeListSaver(repo).Save(ctx, listPage(dayOne, listRecord(1, dayOne, 9))))

	records, err := NewReader(repo).Records(ctx, dayOne)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Website", records[0].Project.Name)
	assert.Equal(t, "Development", records[0].Task.Name)
	assert.Equal(t, domain.StatusCurrent, records[0].Status)

	none, err := NewReader(repo).Records(ctx, dayTwo)
	require.NoError(t, err)
	assert.Empty(t, none)
}
