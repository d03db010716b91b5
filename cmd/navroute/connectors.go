package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newConnectorsCmd(a *app) *cobra.Command {
	var byKey bool
	cmd := &cobra.Command{
		Use:   "connectors",
		Short: "List the connectors of each floor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !byKey {
				fmt.Fprint(out, a.top.String())
				return nil
			}
			owners := a.router.ConnectorFloorMap()
			keys := make([]string, 0, len(owners))
			for k := range owners {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				pos, _ := a.top.Position(k)
				fmt.Fprintf(out, "%s\t%s\t%s\n", k, owners[k], pos)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byKey, "by-key", false, "List connector → floor pairs with positions")

	return cmd
}
