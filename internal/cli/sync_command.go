package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/parser"
	"timesheet-sync/internal/repository/sqlite"
	"timesheet-sync/internal/sync"
)

// newSyncCommand builds the sync subcommand: parse a saved page and
// reconcile the extracted records into the local mirror.
func (r *RootCommand) newSyncCommand() *cobra.Command {
	var pageKind string

	cmd := &cobra.Command{
		Use:   "sync [file]",
		Short: "Parse a saved server page and reconcile it into the local mirror",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			html, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read page file: %w", err)
			}

			repo, err := r.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			handler := NewErrorHandler()
			if err := syncPage(ctx, repo, pageKind, string(html)); err != nil {
				return handler.Handle("sync page", err)
			}
			fmt.Printf("Synced %s page into %s\n", pageKind, r.config.GetDatabasePath())
			return nil
		},
	}

	cmd.Flags().StringVar(&pageKind, "page", pageTimeList,
		fmt.Sprintf("Page kind to sync, one of %s, %s, %s, %s, %s",
			pageTimeEdit, pageTimeList, pageReportForm, pageReport, pageProfile))
	return cmd
}

// syncPage parses the page and routes it to the saver matching its kind.
// Listing pages carry no server identities, so only form-bearing pages
// can be reconciled.
func syncPage(ctx context.Context, repo sqlite.Repository, kind string, html string) error {
	switch kind {
	case pageTimeEdit:
		page, err := parser.ParseTimeEditPage(html)
		if err != nil {
			return err
		}
		return sync.NewFormSaver(repo).Save(ctx, page.Projects, page.Tasks)
	case pageTimeList:
		page, err := parser.ParseTimeListPage(html)
		if err != nil {
			return err
		}
		return sync.NewTimeListSaver(repo).Save(ctx, page)
	case pageReportForm:
		page, err := parser.ParseReportFormPage(html)
		if err != nil {
			return err
		}
		return sync.NewFormSaver(repo).Save(ctx, page.Projects, page.Tasks)
	case pageReport:
		page, err := parser.ParseReportPage(html)
		if err != nil {
			return err
		}
		return sync.NewReportSaver(repo).Save(ctx, page)
	case pageProfile:
		page, err := parser.ParseProfilePage(html)
		if err != nil {
			return err
		}
		return sync.NewProfileSaver(repo).Save(ctx, page)
	default:
		return errors.NewInvalidInputError("page", kind, "page kind cannot be synced")
	}
}
