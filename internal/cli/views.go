package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newViewsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, v := range o.registry.Views() {
				marker := " "
				if v.Name == o.cfg.UI.View {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s %s\t%s\n", marker, v.Name, v.Description)
			}
			return tw.Flush()
		},
	}
}
