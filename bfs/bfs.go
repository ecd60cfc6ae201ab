// Package bfs provides breadth-first path search between two cells of an
// adjacency mapping, returning one shortest path plus the full visit history.
//
// BFS dequeues cells in non-decreasing distance from the origin, so the first
// time the target is dequeued its discoverer chain is a shortest path.
package bfs

import (
	"context"
	"fmt"
)

// noParent marks the root queue item.
const noParent = -1

// queueItem pairs a cell with the depth it was enqueued at.
type queueItem struct {
	cell  int
	depth int
}

// walker encapsulates mutable search state for one FindPath call.
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	origin  int
	target  int
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// FindPath runs breadth-first search on g from origin to target.
//
// Every dequeue appends a Visit record, even for a cell that was already
// visited (unless WithStrictVisits is set); such a cell is then skipped
// without expanding its neighbors. Neighbors are enqueued without a
// visited check, so the queue may hold duplicates.
//
// Edge cases:
//   - origin == target: Found with Path [origin].
//   - origin or target not in g: not Found, no error.
//
// Returns ErrGraphNil, ErrOptionViolation, the context error on
// cancellation, or a wrapped OnVisit error.
// Complexity: O(V + E) time, O(V + E) memory.
func FindPath(origin, target int, g Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{
		Depth:  make(map[int]int),
		Parent: make(map[int]int),
	}
	if origin == target {
		res.Found = true
		res.Path = []int{origin}
		res.Order = []int{origin}
		res.Visits = []Visit{{Cell: origin}}
		res.Depth[origin] = 0
		return res, nil
	}
	if !g.Has(origin) || !g.Has(target) {
		return res, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		origin:  origin,
		target:  target,
		visited: make(map[int]bool),
		res:     res,
	}
	w.enqueue(origin, 0, noParent)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue calls OnEnqueue, records the first discoverer and depth of cell,
// and appends it to the queue.
func (w *walker) enqueue(cell, depth, parent int) {
	w.opts.OnEnqueue(cell, depth)
	if _, seen := w.res.Depth[cell]; !seen {
		w.res.Depth[cell] = depth
		if parent != noParent {
			w.res.Parent[cell] = parent
		}
	}
	w.queue = append(w.queue, queueItem{cell: cell, depth: depth})
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.cell, item.depth)
	return item
}

// loop processes the queue until the target is dequeued, the queue empties,
// a hook fails or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		seen := w.visited[item.cell]
		if !seen || !w.opts.StrictVisits {
			w.res.Order = append(w.res.Order, item.cell)
			w.res.Visits = append(w.res.Visits, Visit{Cell: item.cell})
		}
		if seen {
			continue
		}
		w.visited[item.cell] = true
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.cell, err)
		}

		if item.cell == w.target {
			w.res.Found = true
			path, err := w.res.PathTo(w.target)
			if err != nil {
				return err
			}
			w.res.Path = path
			return nil
		}
		w.expand(item)
	}
	return nil
}

// expand enqueues every neighbor of item within MaxDepth and records them on
// the latest visit record.
func (w *walker) expand(item queueItem) {
	rec := &w.res.Visits[len(w.res.Visits)-1]
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.cell) {
		rec.Enqueued = append(rec.Enqueued, nbr)
		w.enqueue(nbr, next, item.cell)
	}
}
