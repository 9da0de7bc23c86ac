package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// NewVersionsCommand creates the versions command group.
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Query Evergreen versions",
	}
	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsGetCommand())
	return cmd
}

func newVersionsListCommand() *cobra.Command {
	var (
		project   string
		requester string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent versions of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			iter := client.VersionsByProject(cmd.Context(), project, evergreen.Requester(requester))
			versions := make([]*evergreen.Version, 0, limit)
			for len(versions) < limit && iter.HasNext() {
				version, err := iter.Next()
				if err != nil {
					return err
				}
				versions = append(versions, version)
			}
			if !wantsTable() {
				return outputJSON(versions)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Version", "Revision", "Author", "Status", "Created")
			for _, version := range versions {
				_ = table.Append(version.VersionID, version.Revision, version.Author, version.Status,
					evergreen.FormatTime(version.CreateTime))
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "project to query")
	cmd.Flags().StringVar(&requester, "requester", "", "requester filter (defaults to mainline commits)")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of versions to show")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newVersionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VERSION_ID",
		Short: "Show one version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			version, err := client.VersionByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputJSON(version)
		},
	}
}
