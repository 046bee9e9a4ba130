package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjectsPage(t *testing.T) {
	page, err := ParseProjectsPage(loadPage(t, "projects.html"))
	require.NoError(t, err)

	require.Len(t, page.Projects, 2)
	assert.Equal(t, "Website", page.Projects[0].Name)
	assert.Equal(t, "Customer facing site", page.Projects[0].Description)
	assert.Equal(t, "Mobile App", page.Projects[1].Name)
	assert.Empty(t, page.Projects[1].Description)
}

func TestParseProjectTasksPage(t *testing.T) {
	// The tasks listing shares the projects table shape.
	page, err := ParseProjectTasksPage(loadPage(t, "projects.html"))
	require.NoError(t, err)

	require.Len(t, page.Tasks, 2)
	assert.Equal(t, "Website", page.Tasks[0].Name)
}

func TestParseUsersPage(t *testing.T) {
	page, err := ParseUsersPage(loadPage(t, "users.html"))
	require.NoError(t, err)

	require.Len(t, page.Users, 2)

	assert.Equal(t, int64(1), page.Users[0].ID)
	assert.Equal(t, "Anna Developer", page.Users[0].DisplayName)
	assert.Equal(t, "anna", page.Users[0].Username)
	assert.Equal(t, []string{"user"}, page.Users[0].Roles)

	assert.Equal(t, int64(2), page.Users[1].ID)
	assert.Equal(t, []string{"manager", "user"}, page.Users[1].Roles)
}

func TestParseListingPagesMissingTable(t *testing.T) {
	page, err := ParseProjectsPage(loadPage(t, "login.html"))
	require.NoError(t, err)
	assert.Empty(t, page.Projects)

	users, err := ParseUsersPage(loadPage(t, "login.html"))
	require.NoError(t, err)
	assert.Empty(t, users.Users)
}
