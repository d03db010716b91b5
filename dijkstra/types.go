package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.WeightedGraph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a start or end vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – cap on distances to explore (vertices beyond are left at +Inf).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64

	// first invalid option, reported by Dijkstra
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If absent, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max are not explored and keep distance +Inf.
// A negative or NaN max makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.setErr(fmt.Errorf("%w (got %v)", ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge of weight ≥ threshold as a wall.
// A zero, negative or NaN threshold makes Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.setErr(fmt.Errorf("%w (got %v)", ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID:
//   - ReturnPath:       false
//   - MaxDistance:      +Inf
//   - InfEdgeThreshold: +Inf
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// AllPathsResult is the outcome of AllShortestPaths.
type AllPathsResult struct {
	// Paths lists every minimum-weight path, start and end included.
	Paths [][]string
	// Weights maps PathKey(path) to the total weight of that path.
	Weights map[string]float64
	// Distance is the shortest distance from start to end, +Inf if unreachable.
	Distance float64
}

// PathKey joins vertex IDs with "_", the key format used by
// AllPathsResult.Weights.
func PathKey(path []string) string {
	return strings.Join(path, "_")
}
