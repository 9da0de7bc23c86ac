package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/evergreen-ci/evergreen-go/pkg/evergreen"
)

// NewPatchesCommand creates the patches command group.
func NewPatchesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patches",
		Short: "Query Evergreen patches",
	}
	cmd.AddCommand(newPatchesListCommand())
	cmd.AddCommand(newPatchesGetCommand())
	return cmd
}

func newPatchesListCommand() *cobra.Command {
	var (
		project string
		user    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent patches by project or user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var iter *evergreen.Iterator[evergreen.Patch]
			switch {
			case project != "":
				iter = client.PatchesByProject(cmd.Context(), project, nil)
			case user != "":
				iter = client.PatchesByUser(cmd.Context(), user, nil)
			default:
				return cmd.Usage()
			}

			patches := make([]*evergreen.Patch, 0, limit)
			for len(patches) < limit && iter.HasNext() {
				patch, err := iter.Next()
				if err != nil {
					return err
				}
				patches = append(patches, patch)
			}
			if !wantsTable() {
				return outputJSON(patches)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Patch", "Author", "Status", "Description", "Created")
			for _, patch := range patches {
				_ = table.Append(patch.PatchID, patch.Author, patch.Status, patch.Description,
					evergreen.FormatTime(patch.CreateTime))
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "project to query")
	cmd.Flags().StringVar(&user, "user", "", "user to query")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of patches to show")
	return cmd
}

func newPatchesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATCH_ID",
		Short: "Show one patch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			patch, err := client.PatchByID(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			return outputJSON(patch)
		},
	}
}
