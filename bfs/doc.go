// Package bfs provides breadth-first shortest-path search between two cells
// of a board's adjacency mapping, returning the path together with the full
// visit history as plain data.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the origin.
//   - Returns a Result containing:
//   - Found / Path: one shortest origin→target path, origin and target inclusive
//   - Order: every dequeue, in sequence (for a visited-set reveal)
//   - Visits: per-dequeue record of the cell and the neighbors it enqueued
//   - Depth: cell → hop distance from origin
//   - Parent: cell → first discoverer
//   - Supports functional hooks at three stages:
//   - OnEnqueue (every enqueue, duplicates included)
//   - OnDequeue (every dequeue, before the visited check)
//   - OnVisit   (first visit of a cell; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Visit records
//
//	Neighbors are enqueued without checking whether they were already visited,
//	and the visited check happens at dequeue time. By default a repeated dequeue
//	still produces a Visit record (with nothing enqueued) and an Order entry,
//	so a renderer sees exactly the sequence a naive queue walk produces.
//	WithStrictVisits(true) drops those repeats.
//
// Path reconstruction
//
//	Each cell's first discoverer is recorded at enqueue time; the origin never
//	gets one. Because the queue is FIFO, the first discoverer of a cell is one
//	of its neighbors at minimum depth, so walking discoverers back from the
//	target yields a shortest path. Ties between equal-length paths are broken
//	by the neighbor order of the mapping (up, down, left, right for grids).
//
// Determinism
//
//	The same mapping and endpoints always give an identical Result.
//
// Complexity (V = traversable cells, E = adjacent pairs)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)  (queue may hold each edge once in each direction)
//
// Usage
//
//	m := adjacency.Build(g)
//	res, err := bfs.FindPath(origin, target, m)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, context error, or hook error
//	}
//	if !res.Found {
//	    // unreachable: informational, not a failure
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           if the context passed via WithContext is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
