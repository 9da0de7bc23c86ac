package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewHostsCommand creates the hosts command group.
func NewHostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Query Evergreen hosts",
	}
	cmd.AddCommand(newHostsListCommand())
	return cmd
}

func newHostsListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			hosts, err := client.AllHosts(cmd.Context(), status)
			if err != nil {
				return err
			}
			if !wantsTable() {
				return outputJSON(hosts)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Host", "Distro", "Status", "Started By", "Running Task")
			for _, host := range hosts {
				_ = table.Append(host.HostID, host.Distro.DistroID, host.Status, host.StartedBy, host.RunningTask.TaskID)
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only show hosts with this status")
	return cmd
}
