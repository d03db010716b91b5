package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/navigator"
	"github.com/Frankiness/floor-navigation/router"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a route between two points, possibly on different floors",
		Example: `  navroute route --from floor_9:17,0,1 --to floor_10:0,0,-5
  navroute route -b building.yaml --from floor_9:17,0,1 --to out:10,0,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startFloor, start, err := parseLocation(from)
			if err != nil {
				return err
			}
			endFloor, end, err := parseLocation(to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			// Without surfaces there is nothing to walk on: list the
			// connector routes only.
			if len(a.zones.Floors()) == 0 {
				routes, err := a.router.FindRoute(startFloor, endFloor, start)
				if err != nil {
					return err
				}
				if len(routes) == 0 {
					return fmt.Errorf("%w: %q → %q", navigator.ErrNoRoute, startFloor, endFloor)
				}
				printRoutes(out, routes)
				return nil
			}

			nav := navigator.New(a.zones, a.router,
				navigator.WithLogger(a.log), navigator.WithMetrics(a.metrics))
			plan, err := nav.Plan(cmd.Context(), navigator.Request{
				StartFloor: startFloor, Start: start,
				EndFloor: endFloor, End: end,
			})
			if err != nil {
				return err
			}
			printPlan(out, plan)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start location as floor:x,y,z")
	cmd.Flags().StringVar(&to, "to", "", "End location as floor:x,y,z")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func printRoutes(w io.Writer, routes []router.Route) {
	for _, r := range routes {
		mark := " "
		if r.NearestToStart {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s (weight %g)\n", mark, strings.Join(r.Connectors, " → "), r.Weight)
	}
}

func printPlan(w io.Writer, plan *navigator.Plan) {
	if plan.Route != nil {
		fmt.Fprintf(w, "route: %s (weight %g)\n", strings.Join(plan.Route.Connectors, " → "), plan.Route.Weight)
		for _, alt := range plan.Alternatives {
			fmt.Fprintf(w, "alternative: %s\n", strings.Join(alt.Connectors, " → "))
		}
	}
	for _, s := range plan.Steps {
		switch s.Kind {
		case navigator.StepWalk:
			fmt.Fprintf(w, "walk %s %s → %s [%s]: %s\n", s.Floor, s.From, s.To, s.Path.Tier, joinPoints(s.Path.Points))
		case navigator.StepTransition:
			fmt.Fprintf(w, "transition %s → %s to %s\n", s.From, s.To, s.Floor)
		}
	}
}

func joinPoints(pts []geom.Vec3) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}
