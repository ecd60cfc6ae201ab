// Package adjacency derives, for the current state of a board, the mapping
// from every traversable cell to its traversable orthogonal neighbors.
//
// The mapping is a pure function of board state: the same state always
// yields an identical Mapping, and building it has no side effects. It is
// meant to be rebuilt for every search, since obstacles may change between
// searches.
//
// Complexity: Build is O(V) time and memory, V = number of cells.
package adjacency

// Source is the read-only view of a board needed to build a Mapping.
// *grid.Grid satisfies it.
type Source interface {
	// Len returns the number of cells; valid ids are [0, Len()).
	Len() int
	// IsTraversable reports whether a path may pass through cell.
	IsTraversable(cell int) bool
	// NeighborsRaw returns the geometric neighbors of cell in a fixed order.
	NeighborsRaw(cell int) []int
}

// Mapping holds the neighbor lists of every traversable cell.
// lists[c] is nil and present[c] is false for non-traversable cells.
type Mapping struct {
	lists   [][]int
	present []bool
	count   int
}

// Build computes the Mapping for src: for each traversable cell, its raw
// neighbors filtered to the traversable ones, preserving src's neighbor order.
func Build(src Source) *Mapping {
	n := src.Len()
	m := &Mapping{
		lists:   make([][]int, n),
		present: make([]bool, n),
	}
	for c := 0; c < n; c++ {
		if !src.IsTraversable(c) {
			continue
		}
		raw := src.NeighborsRaw(c)
		nbrs := make([]int, 0, len(raw))
		for _, v := range raw {
			if src.IsTraversable(v) {
				nbrs = append(nbrs, v)
			}
		}
		m.lists[c] = nbrs
		m.present[c] = true
		m.count++
	}
	return m
}

// Has reports whether cell is a key of the mapping (i.e. traversable).
func (m *Mapping) Has(cell int) bool {
	return cell >= 0 && cell < len(m.present) && m.present[cell]
}

// Neighbors returns a copy of the traversable neighbors of cell, or nil for
// cells that are not keys.
func (m *Mapping) Neighbors(cell int) []int {
	if !m.Has(cell) {
		return nil
	}
	return append([]int(nil), m.lists[cell]...)
}

// Len returns the number of keys (traversable cells).
func (m *Mapping) Len() int { return m.count }

// Cells returns the keys in ascending order.
func (m *Mapping) Cells() []int {
	out := make([]int, 0, m.count)
	for c, ok := range m.present {
		if ok {
			out = append(out, c)
		}
	}
	return out
}

// EdgeCount returns the number of undirected edges, counting each neighbor
// pair once.
func (m *Mapping) EdgeCount() int {
	total := 0
	for _, l := range m.lists {
		total += len(l)
	}
	return total / 2
}

// Symmetric reports whether every edge a→b has a matching b→a.
func (m *Mapping) Symmetric() bool {
	for a, l := range m.lists {
		for _, b := range l {
			if !contains(m.lists[b], a) {
				return false
			}
		}
	}
	return true
}

func contains(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
