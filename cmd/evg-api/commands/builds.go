package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBuildsCommand creates the builds command group.
func NewBuildsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "Query Evergreen builds",
	}
	cmd.AddCommand(newBuildsGetCommand())
	cmd.AddCommand(newBuildsTasksCommand())
	return cmd
}

func newBuildsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BUILD_ID",
		Short: "Show one build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			build, err := client.BuildByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(build)
		},
	}
}

func newBuildsTasksCommand() *cobra.Command {
	var fetchAllExecutions bool

	cmd := &cobra.Command{
		Use:   "tasks BUILD_ID",
		Short: "List the tasks of a build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			tasks, err := client.TasksByBuild(cmd.Context(), args[0], fetchAllExecutions)
			if err != nil {
				return err
			}
			if !wantsTable() {
				return outputJSON(tasks)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Task", "Display Name", "Status", "Variant")
			for _, task := range tasks {
				_ = table.Append(task.TaskID, task.DisplayName, task.Status, task.BuildVariant)
			}
			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&fetchAllExecutions, "all-executions", false, "include data for earlier executions")
	return cmd
}
