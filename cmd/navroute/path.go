package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var floor, from, to string
	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Find a walking path on a single floor",
		Example: `  navroute path -b building.yaml --floor floor_9 --from 1,0,1 --to 20,0,-3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseVec(from)
			if err != nil {
				return err
			}
			end, err := parseVec(to)
			if err != nil {
				return err
			}
			p, err := a.zones.QueryPath(floor, start, end)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tier: %s\n", p.Tier)
			for _, pt := range p.Points {
				fmt.Fprintln(out, pt)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&floor, "floor", "", "Floor key")
	cmd.Flags().StringVar(&from, "from", "", "Start point as x,y,z")
	cmd.Flags().StringVar(&to, "to", "", "End point as x,y,z")
	_ = cmd.MarkFlagRequired("floor")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
