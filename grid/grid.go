// Package grid provides the board model: construction, bounds checks,
// row-major addressing and geometric neighbor queries.
package grid

// New constructs an N×N grid with every cell Open and both markers unset.
// Returns ErrInvalidSize if size <= 0.
// Complexity: O(N²) time and memory.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Grid{
		size:   size,
		cells:  make([]State, size*size),
		origin: NoCell,
		target: NoCell,
	}, nil
}

// Size returns N, the side length.
func (g *Grid) Size() int { return g.size }

// Len returns N², the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Valid reports whether cell is a valid id in [0, N²).
// Complexity: O(1).
func (g *Grid) Valid(cell int) bool {
	return cell >= 0 && cell < len(g.cells)
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Index maps (row, col) to a row-major cell id: row*N + col.
// The result is meaningless when InBounds(row, col) is false.
func (g *Grid) Index(row, col int) int {
	return row*g.size + col
}

// Coordinate converts a row-major cell id back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(cell int) (row, col int) {
	return cell / g.size, cell % g.size
}

// State returns the state of cell, or ErrOutOfBounds.
func (g *Grid) State(cell int) (State, error) {
	if !g.Valid(cell) {
		return Open, ErrOutOfBounds
	}
	return g.cells[cell], nil
}

// IsTraversable reports whether cell is Open, Origin or Target.
// Out-of-bounds cells are never traversable.
func (g *Grid) IsTraversable(cell int) bool {
	return g.Valid(cell) && g.cells[cell].Traversable()
}

// NeighborsRaw returns the orthogonal neighbors of cell in the order
// up, down, left, right. Cells on an edge yield fewer results; there is no
// wraparound and no traversability filtering. Invalid cells yield nil.
// Complexity: O(1).
func (g *Grid) NeighborsRaw(cell int) []int {
	if !g.Valid(cell) {
		return nil
	}
	row, col := g.Coordinate(cell)
	out := make([]int, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		out = append(out, g.Index(r, c))
	}
	return out
}

// Origin returns the origin cell and whether it has been placed.
func (g *Grid) Origin() (int, bool) { return g.origin, g.origin != NoCell }

// Target returns the target cell and whether it has been placed.
func (g *Grid) Target() (int, bool) { return g.target, g.target != NoCell }

// Obstacles returns the blocked cells in ascending order.
func (g *Grid) Obstacles() []int {
	var out []int
	for id, s := range g.cells {
		if s == Blocked {
			out = append(out, id)
		}
	}
	return out
}

// FreeCells returns every cell that is not Blocked, in ascending order.
// Marker cells are included.
func (g *Grid) FreeCells() []int {
	out := make([]int, 0, len(g.cells))
	for id, s := range g.cells {
		if s != Blocked {
			out = append(out, id)
		}
	}
	return out
}

// ClearObstacles resets every Blocked cell to Open.
func (g *Grid) ClearObstacles() {
	for id, s := range g.cells {
		if s == Blocked {
			g.cells[id] = Open
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells, origin: g.origin, target: g.target}
}
