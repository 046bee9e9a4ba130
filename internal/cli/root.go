package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timesheet-sync/internal/config"
	"timesheet-sync/internal/repository/sqlite"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "tsync",
		Short: "Parse timesheet server pages into a local SQLite mirror",
		Long: `Timesheet Sync (tsync) parses the HTML pages of a legacy timesheet
server and reconciles the extracted records into a local SQLite mirror.

EXAMPLES:
  tsync parse --page time-list today.html       # Parse a saved page, print JSON
  tsync sync --page time-list today.html        # Parse and reconcile into the mirror
  tsync projects                                # List cached projects
  tsync tasks                                   # List cached tasks
  tsync records --date 2026-08-28               # List cached records for one day
  tsync profile                                 # Show the cached profile

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TS_DB_DIR                              Database directory (default: ~/.tsync)
    TS_DB_FILENAME                         Database filename (default: tsync.db)
    TS_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TS_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    TS_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TS_DISPLAY_TIME_FORMAT                 Time format (default: 15:04)

  Application Configuration:
    TS_APP_TIMEOUT                         Application timeout (default: 60s)
    TS_APP_VERBOSE                         Enable verbose output (default: false)
    TS_DEBUG                               Enable debug logging (default: off)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TS_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TS_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TS_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides TS_DB_WRITE_TIMEOUT)")

	flags.String("date-format", "", "Date display format (overrides TS_DISPLAY_DATE_FORMAT)")
	flags.String("time-format", "", "Time display format (overrides TS_DISPLAY_TIME_FORMAT)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TS_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TS_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newParseCommand(),
		r.newSyncCommand(),
		r.newProjectsCommand(),
		r.newTasksCommand(),
		r.newRecordsCommand(),
		r.newProfileCommand(),
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Display.DateFormat = dateFormat
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

// openRepository creates the repository from the effective configuration.
// The caller owns the returned repository and must close it.
func (r *RootCommand) openRepository() (sqlite.Repository, error) {
	return config.CreateRepository(r.config)
}
