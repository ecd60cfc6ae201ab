// Package pathfinder is the programmatic surface offered to a presentation
// layer: configure a board, move markers, toggle obstacles and request a
// shortest path. Each request rebuilds the adjacency mapping from the current
// board, so obstacle edits between requests are always honored.
//
// All Session methods are serialized by a mutex: a mutation can never
// interleave with an in-flight search.
package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for session operations.
var (
	// ErrUnknownRole indicates a marker role other than RoleOrigin or RoleTarget.
	ErrUnknownRole = errors.New("pathfinder: unknown marker role")
	// ErrMarkerUnset indicates a path request before both markers were placed.
	ErrMarkerUnset = errors.New("pathfinder: origin and target must be placed")
	// ErrDragFinished indicates reuse of a drag that was already dropped or cancelled.
	ErrDragFinished = errors.New("pathfinder: drag already finished")
)

// Role selects a marker.
type Role int

const (
	// RoleOrigin is the start marker.
	RoleOrigin Role = iota
	// RoleTarget is the end marker.
	RoleTarget
)

// String returns "origin", "target" or "unknown".
func (r Role) String() string {
	switch r {
	case RoleOrigin:
		return "origin"
	case RoleTarget:
		return "target"
	default:
		return "unknown"
	}
}

// Session owns one board and serves path requests against it.
type Session struct {
	mu   sync.Mutex
	g    *grid.Grid
	cfg  config
	log  *slog.Logger
	runs int
}

// ConfigureGrid creates a session over a fresh size×size board.
// With WithRand or WithRandomMarkers both markers are placed at random.
// Returns grid.ErrInvalidSize for size <= 0, or grid.ErrTooFewCells when
// random markers are requested on a 1×1 board.
func ConfigureGrid(size int, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		cfg: cfg,
		log: cfg.logger.With("component", "pathfinder"),
	}
	if err := s.reset(size); err != nil {
		return nil, err
	}
	s.log.Debug("grid configured", "size", size, "random_markers", cfg.randomMarkers)
	return s, nil
}

func (s *Session) reset(size int) error {
	g, err := grid.New(size)
	if err != nil {
		return err
	}
	if s.cfg.randomMarkers {
		if err := g.RandomizeMarkers(s.cfg.rng); err != nil {
			return err
		}
	}
	s.g = g
	return nil
}

// Size returns the board side length.
func (s *Session) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Size()
}

// SetMarker moves the marker for role to cell.
// Errors: ErrUnknownRole, grid.ErrOutOfBounds, grid.ErrCellOccupied.
func (s *Session) SetMarker(role Role, cell int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setMarker(role, cell)
}

func (s *Session) setMarker(role Role, cell int) error {
	var err error
	switch role {
	case RoleOrigin:
		err = s.g.PlaceOrigin(cell)
	case RoleTarget:
		err = s.g.PlaceTarget(cell)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	if err != nil {
		s.log.Debug("marker rejected", "role", role, "cell", cell, "err", err)
		return err
	}
	s.log.Debug("marker placed", "role", role, "cell", cell)
	return nil
}

// SetObstacle blocks (blocked == true) or opens cell. Marker cells are
// silently left alone. Errors: grid.ErrOutOfBounds.
func (s *Session) SetObstacle(cell int, blocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.SetObstacle(cell, blocked)
}

// ToggleObstacle flips cell between open and blocked and returns its new state.
func (s *Session) ToggleObstacle(cell int) (grid.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.ToggleObstacle(cell)
}

// RandomizeMarkers re-places both markers on random free cells using rng,
// or the session source when rng is nil.
func (s *Session) RandomizeMarkers(rng *rand.Rand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rng == nil {
		rng = s.cfg.rng
	}
	return s.g.RandomizeMarkers(rng)
}

// ClearMarkers lifts both markers off the board. RequestPath fails with
// ErrMarkerUnset until they are placed again.
func (s *Session) ClearMarkers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.ClearMarkers()
}

// ScatterObstacles blocks each open cell with probability density using the
// session source and returns how many cells were blocked. Markers stay put.
func (s *Session) ScatterObstacles(density float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.g.ScatterObstacles(s.cfg.rng, density)
	s.log.Debug("obstacles scattered", "density", density, "blocked", n)
	return n
}

// Reset replaces the board with a fresh one of the same size, re-placing the
// markers at random when the session was configured that way.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset(s.g.Size())
}

// Snapshot returns a copy of the current board for rendering.
func (s *Session) Snapshot() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Clone()
}

// RequestPath searches for a shortest origin→target path on the current board.
// An unreachable target is reported through Result.Found, not as an error.
// Errors: ErrMarkerUnset, or the context error if ctx is done mid-search.
func (s *Session) RequestPath(ctx context.Context) (*bfs.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin, okO := s.g.Origin()
	target, okT := s.g.Target()
	if !okO || !okT {
		return nil, ErrMarkerUnset
	}

	s.runs++
	start := time.Now()
	m := adjacency.Build(s.g)
	res, err := bfs.FindPath(origin, target, m,
		bfs.WithContext(ctx),
		bfs.WithStrictVisits(s.cfg.strictVisits),
	)
	elapsed := time.Since(start)
	if err != nil {
		if s.cfg.metrics != nil {
			s.cfg.metrics.RecordError()
		}
		s.log.Warn("search failed", "run", s.runs, "err", err)
		return nil, fmt.Errorf("pathfinder: search %d: %w", s.runs, err)
	}

	if s.cfg.metrics != nil {
		s.cfg.metrics.SetObstacles(len(s.g.Obstacles()))
		s.cfg.metrics.RecordSearch(res.Found, len(res.Order), res.Len(), elapsed)
	}
	s.log.Info("search finished",
		"run", s.runs,
		"origin", origin,
		"target", target,
		"found", res.Found,
		"hops", res.Len(),
		"dequeues", len(res.Order),
		"elapsed", elapsed,
	)
	return res, nil
}
