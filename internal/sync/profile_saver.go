package sync

import (
	"context"

	"timesheet-sync/internal/logging"
	"timesheet-sync/internal/parser"
	"timesheet-sync/internal/repository/sqlite"
)

// ProfileSaver upserts the single local profile row from a parsed
// profile page.
type ProfileSaver struct {
	repo sqlite.Repository
}

// NewProfileSaver creates a new profile saver backed by the given repository.
func NewProfileSaver(repo sqlite.Repository) *ProfileSaver {
	return &ProfileSaver{repo: repo}
}

// Save stores the page's user. A page without a username saves nothing.
func (s *ProfileSaver) Save(ctx context.Context, page *parser.ProfilePage) error {
	if page == nil || page.User.IsEmpty() {
		logging.Debugln("profile save skipped: empty page")
		return nil
	}
	return s.repo.SaveUser(ctx, userModel(page.User))
}
