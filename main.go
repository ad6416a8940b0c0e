// TaskBoardService serves and edits a board of tasks grouped by category and
// assigned to users.
//
// The server stores tasks in MySQL (or SQLite/PostgreSQL) and validates every
// write. Writes are confirmed, not echoed: a create answers with the new id
// and an update with a message, and clients read the task back to refresh
// their cache. Rate limiting is applied with a rate of 2 events per second
// and a burst of 20 by default, or per client through Redis when REDIS_ADDR
// is set. Prometheus metrics are served on /metrics.
//
// The following commands are available:
//
//  1. taskboard serve [--migrate]   - Run the HTTP service
//  2. taskboard migrate             - Create the database schema
//  3. taskboard tasks list          - Show tasks grouped by category
//  4. taskboard tasks add           - Create a task
//  5. taskboard tasks update ID     - Change some fields of a task
//  6. taskboard tasks delete ID     - Delete a task
//
// Configuration comes from the environment, a .env file outside production,
// and the file passed with --config.
package main

import (
	"fmt"
	"os"

	"TaskBoardService/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "Task board service and command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (yaml, json, toml or env)")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newTasksCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
