package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Query Evergreen tasks",
	}
	cmd.AddCommand(newTasksGetCommand())
	cmd.AddCommand(newTasksLogCommand())
	return cmd
}

func newTasksGetCommand() *cobra.Command {
	var fetchAllExecutions bool

	cmd := &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			task, err := client.TaskByID(cmd.Context(), args[0], fetchAllExecutions)
			if err != nil {
				return err
			}
			return outputJSON(task)
		},
	}

	cmd.Flags().BoolVar(&fetchAllExecutions, "all-executions", false, "include data for earlier executions")
	return cmd
}

func newTasksLogCommand() *cobra.Command {
	var logName string

	cmd := &cobra.Command{
		Use:   "log TASK_ID",
		Short: "Stream a task log to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			task, err := client.TaskByID(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}
			stream, err := task.StreamLog(cmd.Context(), logName)
			if err != nil {
				return err
			}
			defer stream.Close()

			for stream.Scan() {
				fmt.Println(stream.Text())
			}
			return stream.Err()
		},
	}

	cmd.Flags().StringVar(&logName, "log", "task", "log to stream (task, agent, system, all)")
	return cmd
}
