package cli

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"timesheet-sync/internal/errors"
	"timesheet-sync/internal/parser"
)

// Page kinds accepted by the parse and sync commands.
const (
	pageTimeEdit   = "time-edit"
	pageTimeList   = "time-list"
	pageReportForm = "report-form"
	pageReport     = "report"
	pageProjects   = "projects"
	pageTasks      = "tasks"
	pageProfile    = "profile"
	pageUsers      = "users"
)

var pageKinds = []string{
	pageTimeEdit, pageTimeList, pageReportForm, pageReport,
	pageProjects, pageTasks, pageProfile, pageUsers,
}

// newParseCommand builds the parse subcommand: parse a saved page and
// print the extracted data as JSON without touching the mirror.
func (r *RootCommand) newParseCommand() *cobra.Command {
	var pageKind string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a saved server page and print the extracted data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read page file: %w", err)
			}

			page, err := parsePage(pageKind, string(html))
			if err != nil {
				return NewErrorHandler().Handle("parse page", err)
			}

			out, err := sonic.MarshalIndent(page, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode page: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&pageKind, "page", pageTimeList,
		fmt.Sprintf("Page kind to parse, one of %v", pageKinds))
	return cmd
}

// parsePage routes a page to its parser by kind.
func parsePage(kind string, html string) (interface{}, error) {
	switch kind {
	case pageTimeEdit:
		return parser.ParseTimeEditPage(html)
	case pageTimeList:
		return parser.ParseTimeListPage(html)
	case pageReportForm:
		return parser.ParseReportFormPage(html)
	case pageReport:
		return parser.ParseReportPage(html)
	case pageProjects:
		return parser.ParseProjectsPage(html)
	case pageTasks:
		return parser.ParseProjectTasksPage(html)
	case pageProfile:
		return parser.ParseProfilePage(html)
	case pageUsers:
		return parser.ParseUsersPage(html)
	default:
		return nil, errors.NewInvalidInputError("page", kind,
			fmt.Sprintf("unknown page kind, expected one of %v", pageKinds))
	}
}
