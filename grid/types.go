// Package grid defines cell states, sentinel errors and the Grid type.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrOutOfBounds indicates a cell id outside [0, N²).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrCellOccupied indicates a marker placement onto a blocked or already-marked cell.
	ErrCellOccupied = errors.New("grid: cell occupied")
	// ErrTooFewCells indicates there are not enough free cells to place both markers.
	ErrTooFewCells = errors.New("grid: need at least two free cells for markers")
)

// NoCell is returned in place of a cell id when a marker has not been placed.
const NoCell = -1

// State is the content of a single cell.
type State uint8

const (
	// Open is an empty, traversable cell.
	Open State = iota
	// Blocked is an obstacle.
	Blocked
	// Origin is the start marker.
	Origin
	// Target is the end marker.
	Target
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	case Origin:
		return "origin"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// Traversable reports whether a path may pass through a cell in state s.
func (s State) Traversable() bool {
	return s == Open || s == Origin || s == Target
}

// neighborOffsets lists the orthogonal (row, col) steps in the fixed order
// up, down, left, right. Adjacency lists inherit this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an N×N board. N is fixed at construction.
// cells[id] holds the state of cell id = row*N + col.
// origin and target are NoCell until placed.
type Grid struct {
	size   int
	cells  []State
	origin int
	target int
}
