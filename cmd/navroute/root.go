package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/Frankiness/floor-navigation/config"
	"github.com/Frankiness/floor-navigation/logging"
	"github.com/Frankiness/floor-navigation/navigator"
	"github.com/Frankiness/floor-navigation/router"
	"github.com/Frankiness/floor-navigation/topology"
	"github.com/Frankiness/floor-navigation/zone"
)

// app is the state shared by every subcommand, built before any of them runs.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	top     *topology.Topology
	zones   *zone.Pathfinder
	router  *router.Router
	reg     *prometheus.Registry
	metrics *navigator.Metrics
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		building string
		metrics  bool
		logLevel string
	)

	root := &cobra.Command{
		Use:   "navroute",
		Short: "Multi-floor indoor route planning",
		Long: `navroute plans walking routes through a building made of floors joined
by connectors (stairs, elevators, doors).

Without --building (or $NAVROUTE_BUILDING) the built-in reference building
is used; it has connectors but no walkable surfaces, so only connector
routes can be planned.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("building") {
				cfg.Building = building
			}
			if cmd.Flags().Changed("metrics") {
				cfg.MetricsEnabled = metrics
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			return a.init(cmd, cfg)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.MetricsEnabled {
				return nil
			}
			return a.dumpMetrics(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&building, "building", "b", "", "Building file (default: $NAVROUTE_BUILDING or the reference building)")
	root.PersistentFlags().BoolVar(&metrics, "metrics", false, "Print Prometheus metrics after the command")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	root.AddCommand(newRouteCmd(a), newPathCmd(a), newConnectorsCmd(a))

	return root
}

// init loads the building and wires the planners.
func (a *app) init(cmd *cobra.Command, cfg config.Config) error {
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging)
	a.zones = zone.NewPathfinder(zone.WithLogger(a.log))

	if cfg.Building == "" {
		a.top = topology.Default()
	} else {
		b, err := config.LoadBuilding(cfg.Building)
		if err != nil {
			return err
		}
		if a.top, err = b.Topology(); err != nil {
			return err
		}
		surfaces, err := b.Surfaces()
		if err != nil {
			return err
		}
		for floor, m := range surfaces {
			if err := a.zones.RegisterZone(floor, m); err != nil {
				return err
			}
		}
		a.log.Debug("building loaded", slog.String("path", cfg.Building),
			slog.Int("floors", len(a.top.Floors())), slog.Int("surfaces", len(surfaces)))
	}
	a.router = router.New(a.top, router.WithLogger(a.log))

	if cfg.MetricsEnabled {
		a.reg = prometheus.NewRegistry()
		a.metrics = navigator.NewMetrics(a.reg)
	}

	return nil
}

func (a *app) dumpMetrics(cmd *cobra.Command) error {
	families, err := a.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return err
		}
	}

	return nil
}
