package zone

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/Frankiness/floor-navigation/geom"
)

// Sentinel errors for zone registration and queries.
var (
	// ErrEmptyFloor indicates a zone registered under an empty floor key.
	ErrEmptyFloor = errors.New("zone: floor key is empty")
	// ErrNilSurface indicates a nil surface passed to RegisterZone.
	ErrNilSurface = errors.New("zone: surface is nil")
	// ErrZoneNotRegistered indicates a query against an unknown floor.
	ErrZoneNotRegistered = errors.New("zone: no surface registered for floor")
	// ErrNoPath indicates that every fallback tier came back empty.
	ErrNoPath = errors.New("zone: no path on surface")
)

// Surface is the walkable-surface capability QueryPath needs.
type Surface interface {
	// Region returns the connected region closest to p.
	Region(p geom.Vec3) (int, bool)
	// ClosestNode returns the walkable node of region nearest to p.
	ClosestNode(p geom.Vec3, region int) (geom.Vec3, bool)
	// FindPath returns a path from start to end inside region, or nil.
	FindPath(start, end geom.Vec3, region int) []geom.Vec3
}

// Tier identifies which fallback produced a path.
type Tier int

const (
	TierDirect Tier = iota + 1
	TierNearEnd
	TierNearStart
	TierNearBoth
)

// String returns a short label, used as a metric and log value.
func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierNearEnd:
		return "near_end"
	case TierNearStart:
		return "near_start"
	case TierNearBoth:
		return "near_both"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Path is a resolved single-floor path.
type Path struct {
	Floor  string
	Points []geom.Vec3
	Tier   Tier
}

// Option configures a Pathfinder.
type Option func(*Pathfinder)

// WithLogger sets the logger for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pathfinder) {
		if l != nil {
			p.log = l
		}
	}
}

// Pathfinder maps floor keys to walkable surfaces.
type Pathfinder struct {
	mu       sync.RWMutex
	surfaces map[string]Surface
	log      *slog.Logger
}

// NewPathfinder returns an empty Pathfinder.
func NewPathfinder(opts ...Option) *Pathfinder {
	p := &Pathfinder{
		surfaces: make(map[string]Surface),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// RegisterZone attaches s to floor. Registering a floor twice keeps the
// first surface and returns nil.
func (p *Pathfinder) RegisterZone(floor string, s Surface) error {
	if floor == "" {
		return ErrEmptyFloor
	}
	if s == nil {
		return fmt.Errorf("%w: floor %q", ErrNilSurface, floor)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.surfaces[floor]; ok {
		p.log.Debug("zone already registered", slog.String("floor", floor))
		return nil
	}
	p.surfaces[floor] = s

	return nil
}

// HasZone reports whether floor has a surface.
func (p *Pathfinder) HasZone(floor string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.surfaces[floor]

	return ok
}

// Floors returns the registered floor keys, sorted.
func (p *Pathfinder) Floors() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.surfaces))
	for f := range p.surfaces {
		out = append(out, f)
	}
	sort.Strings(out)

	return out
}

// QueryPath finds a path on floor from start to end through the fallback
// tiers described in the package doc.
func (p *Pathfinder) QueryPath(floor string, start, end geom.Vec3) (*Path, error) {
	p.mu.RLock()
	s, ok := p.surfaces[floor]
	p.mu.RUnlock()
	if !ok {
		p.log.Warn("path query on unregistered floor", slog.String("floor", floor))
		return nil, fmt.Errorf("%w: %q", ErrZoneNotRegistered, floor)
	}

	if pts := find(s, start, end); len(pts) > 0 {
		return &Path{Floor: floor, Points: pts, Tier: TierDirect}, nil
	}

	// Every snap is taken inside the region of the original start.
	region, ok := s.Region(start)
	if !ok {
		p.log.Warn("start is off every region",
			slog.String("floor", floor), slog.String("start", start.String()))
		return nil, fmt.Errorf("%w: floor %q, start %v off surface", ErrNoPath, floor, start)
	}
	nearEnd, endOK := s.ClosestNode(end, region)
	nearStart, startOK := s.ClosestNode(start, region)

	tiers := []struct {
		tier     Tier
		ok       bool
		from, to geom.Vec3
	}{
		{TierNearEnd, endOK, start, nearEnd},
		{TierNearStart, startOK, nearStart, end},
		{TierNearBoth, startOK && endOK, nearStart, nearEnd},
	}
	for _, t := range tiers {
		if !t.ok {
			continue
		}
		if pts := find(s, t.from, t.to); len(pts) > 0 {
			p.log.Debug("path found by fallback",
				slog.String("floor", floor), slog.String("tier", t.tier.String()))
			return &Path{Floor: floor, Points: pts, Tier: t.tier}, nil
		}
	}

	p.log.Warn("all fallback tiers exhausted",
		slog.String("floor", floor), slog.String("start", start.String()), slog.String("end", end.String()))

	return nil, fmt.Errorf("%w: floor %q from %v to %v", ErrNoPath, floor, start, end)
}

// find runs one FindPath inside the region of from.
func find(s Surface, from, to geom.Vec3) []geom.Vec3 {
	region, ok := s.Region(from)
	if !ok {
		return nil
	}

	return s.FindPath(from, to, region)
}
