package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/router"
	"github.com/Frankiness/floor-navigation/zone"
)

const testBuilding = "../../config/testdata/building.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"NAVROUTE_BUILDING", "NAVROUTE_METRICS", "LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER"} {
		t.Setenv(key, "")
	}
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestConnectorsCommand(t *testing.T) {
	out, err := run(t, "connectors")
	require.NoError(t, err)
	assert.Equal(t, "floor_9: A, B, C\nfloor_10: D, E\nout: F, G\n", out)

	out, err = run(t, "connectors", "--by-key")
	require.NoError(t, err)
	assert.Contains(t, out, "A\tfloor_9\t")
	assert.Contains(t, out, "G\tout\t")
}

func TestRouteCommand_ConnectorsOnly(t *testing.T) {
	out, err := run(t, "route", "--from", "floor_9:0,0,0", "--to", "floor_10:0,0,0")
	require.NoError(t, err)
	assert.Contains(t, out, "* B → D (weight 1)\n")
	assert.Contains(t, out, "  C → D (weight 1)\n")

	_, err = run(t, "route", "--from", "floor_9:0,0,0", "--to", "roof:0,0,0")
	assert.ErrorIs(t, err, router.ErrFloorNotFound)
}

func TestRouteCommand_Building(t *testing.T) {
	out, err := run(t, "route", "-b", testBuilding, "--metrics",
		"--from", "floor_9:17.3,0,1.2", "--to", "floor_10:0.4,0,-5.3")
	require.NoError(t, err)
	assert.Contains(t, out, "route: B → D (weight 1)\n")
	assert.Contains(t, out, "alternative: C → D\n")
	assert.Contains(t, out, "walk floor_9 start → B [direct]")
	assert.Contains(t, out, "transition B → D to floor_10\n")
	assert.Contains(t, out, "walk floor_10 D → end [direct]")
	assert.Contains(t, out, `navroute_plan_total{result="ok"} 1`)
}

func TestPathCommand(t *testing.T) {
	out, err := run(t, "path", "-b", testBuilding, "--floor", "out", "--from", "1,0,1", "--to", "19,0,4")
	require.NoError(t, err)
	assert.Equal(t, "tier: direct\n(1.0, 0.0, 1.0)\n(19.0, 0.0, 4.0)\n", out)

	_, err = run(t, "path", "--floor", "out", "--from", "1,0,1", "--to", "19,0,4")
	assert.ErrorIs(t, err, zone.ErrZoneNotRegistered)
}

func TestCommands_BadInput(t *testing.T) {
	_, err := run(t, "route", "--from", "0,0,0", "--to", "floor_10:0,0,0")
	assert.Error(t, err)

	_, err = run(t, "path", "--floor", "out", "--from", "1,0", "--to", "1,0,1")
	assert.Error(t, err)

	_, err = run(t, "connectors", "-b", "does/not/exist.yaml")
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	floor, p, err := parseLocation("floor_9: 1.5, 0,-2")
	require.NoError(t, err)
	assert.Equal(t, "floor_9", floor)
	assert.Equal(t, geom.V(1.5, 0, -2), p)

	for _, bad := range []string{"", ":1,2,3", "f:1,2", "f:a,b,c", "1,2,3"} {
		_, _, err := parseLocation(bad)
		assert.Error(t, err, bad)
	}
}
