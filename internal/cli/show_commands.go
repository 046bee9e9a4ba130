package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timesheet-sync/internal/domain"
	"timesheet-sync/internal/sync"
	"timesheet-sync/internal/timefmt"
)

// newProjectsCommand lists the cached projects.
func (r *RootCommand) newProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List cached projects and their task associations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withReader(func(ctx context.Context, reader *sync.Reader) error {
				projects, err := reader.Projects(ctx)
				if err != nil {
					return err
				}
				if len(projects) == 0 {
					fmt.Println("No projects cached")
					return nil
				}
				for _, project := range projects {
					fmt.Printf("%6d  %-30s  tasks: %s\n",
						project.ID, project.Name, formatTaskIDs(project.TaskIDs))
				}
				return nil
			})
		},
	}
}

// newTasksCommand lists the cached tasks.
func (r *RootCommand) newTasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List cached tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withReader(func(ctx context.Context, reader *sync.Reader) error {
				tasks, err := reader.Tasks(ctx)
				if err != nil {
					return err
				}
				if len(tasks) == 0 {
					fmt.Println("No tasks cached")
					return nil
				}
				for _, task := range tasks {
					fmt.Printf("%6d  %s\n", task.ID, task.Name)
				}
				return nil
			})
		},
	}
}

// newRecordsCommand lists the cached time records, optionally for one day.
func (r *RootCommand) newRecordsCommand() *cobra.Command {
	var dateText string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List cached time records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var date time.Time
			if dateText != "" {
				parsed, ok := timefmt.ParseDate(dateText)
				if !ok {
					return fmt.Errorf("invalid date %q, expected %s", dateText, timefmt.DatePattern)
				}
				date = parsed
			}

			return r.withReader(func(ctx context.Context, reader *sync.Reader) error {
				records, err := reader.Records(ctx, date)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("No records cached")
					return nil
				}
				for _, record := range records {
					fmt.Println(r.formatRecord(record))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dateText, "date", "", "Only records of this day (format 2006-01-02)")
	return cmd
}

// newProfileCommand shows the cached profile.
func (r *RootCommand) newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the cached profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withReader(func(ctx context.Context, reader *sync.Reader) error {
				user, err := reader.User(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("Login:  %s\n", user.Username)
				fmt.Printf("Name:   %s\n", user.DisplayName)
				fmt.Printf("Email:  %s\n", user.Email)
				if len(user.Roles) > 0 {
					fmt.Printf("Roles:  %s\n", strings.Join(user.Roles, ", "))
				}
				return nil
			})
		},
	}
}

// withReader opens the repository and runs fn with a reader over it.
func (r *RootCommand) withReader(fn func(context.Context, *sync.Reader) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
	defer cancel()

	repo, err := r.openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := fn(ctx, sync.NewReader(repo)); err != nil {
		return NewErrorHandler().HandleSimple(err)
	}
	return nil
}

func (r *RootCommand) formatRecord(record domain.TimeRecord) string {
	var interval string
	if record.Start != nil && record.Finish != nil {
		interval = fmt.Sprintf("%s-%s",
			record.Start.Format(r.config.Display.TimeFormat),
			record.Finish.Format(r.config.Display.TimeFormat))
	} else if record.Start != nil {
		interval = record.Start.Format(r.config.Display.TimeFormat) + "-"
	}

	return fmt.Sprintf("%6d  %s  %-11s  %-25s  %-20s  %s",
		record.ID,
		record.Date.Format(r.config.Display.DateFormat),
		interval,
		record.Project.Name,
		record.Task.Name,
		record.Note)
}

func formatTaskIDs(taskIDs []int64) string {
	if len(taskIDs) == 0 {
		return "-"
	}
	parts := make([]string, len(taskIDs))
	for i, id := range taskIDs {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
