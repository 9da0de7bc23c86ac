package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Query Evergreen projects",
	}
	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			projects, err := client.AllProjects(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if enabledOnly {
				kept := projects[:0]
				for _, project := range projects {
					if project.Enabled {
						kept = append(kept, project)
					}
				}
				projects = kept
			}
			if !wantsTable() {
				return outputJSON(projects)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Identifier", "Display Name", "Repo", "Branch", "Enabled")
			for _, project := range projects {
				_ = table.Append(project.Identifier, project.DisplayName, project.RepoName, project.BranchName, project.Enabled)
			}
			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only show enabled projects")
	return cmd
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			project, err := client.ProjectByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(project)
		},
	}
}
