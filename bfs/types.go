// Package bfs provides tunable options, result types and error definitions
// for breadth-first path search over a cell adjacency mapping.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Graph is the adjacency view consumed by FindPath.
// *adjacency.Mapping satisfies it.
type Graph interface {
	// Has reports whether cell is traversable (a key of the mapping).
	Has(cell int) bool
	// Neighbors returns the traversable neighbors of cell in a fixed order.
	Neighbors(cell int) []int
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when FindPath is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// StrictVisits drops repeated dequeues of an already-visited cell from
	// Order and Visits. By default they are kept.
	StrictVisits bool

	// MaxDepth, if > 0, stops enqueueing cells beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnEnqueue is called for every enqueue, duplicates included.
	OnEnqueue func(cell, depth int)

	// OnDequeue is called for every dequeue, before the visited check.
	OnDequeue func(cell, depth int)

	// OnVisit is called when a cell is visited for the first time.
	// Returning an error aborts the search.
	OnVisit func(cell, depth int) error

	err error
}

// DefaultOptions returns Options with background context, duplicate visit
// records kept, no depth limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrictVisits toggles deduplication of visit records.
func WithStrictVisits(strict bool) Option {
	return func(o *Options) {
		o.StrictVisits = strict
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0: do not enqueue cells deeper than d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on first visit; returning an
// error from it stops the search.
func WithOnVisit(fn func(cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Visit is the record appended for one dequeue: the dequeued cell and the
// neighbors it enqueued. Enqueued is empty when the cell was already visited
// or was the target.
type Visit struct {
	Cell     int
	Enqueued []int
}

// Result holds the outcome of one search:
//   - Found: whether target was reached.
//   - Path: origin..target inclusive when Found, nil otherwise.
//   - Order: dequeued cells in dequeue order (repeats kept unless strict).
//   - Visits: one record per entry of Order.
//   - Depth: cell → hop distance from origin, set at first enqueue.
//   - Parent: cell → first discoverer; the origin has no entry.
type Result struct {
	Found  bool
	Path   []int
	Order  []int
	Visits []Visit
	Depth  map[int]int
	Parent map[int]int
}

// Len returns the number of hops in Path, or -1 when no path was found.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Visited returns the distinct cells of Order, in first-dequeue order.
func (r *Result) Visited() []int {
	seen := make(map[int]struct{}, len(r.Order))
	out := make([]int, 0, len(r.Order))
	for _, c := range r.Order {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// PathTo walks Parent links from dest back to the origin.
// Returns an error if dest was never discovered.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
