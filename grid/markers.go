package grid

import "fmt"

// PlaceOrigin moves the origin marker to cell. The previous origin cell, if
// any, reverts to Open. Placing the origin on its current cell is a no-op.
// Returns ErrOutOfBounds for an invalid id and ErrCellOccupied if cell is
// Blocked or holds the target.
func (g *Grid) PlaceOrigin(cell int) error {
	return g.placeMarker(Origin, &g.origin, cell)
}

// PlaceTarget moves the target marker to cell, with the same rules as PlaceOrigin.
func (g *Grid) PlaceTarget(cell int) error {
	return g.placeMarker(Target, &g.target, cell)
}

func (g *Grid) placeMarker(role State, pos *int, cell int) error {
	if !g.Valid(cell) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfBounds, cell, len(g.cells))
	}
	switch g.cells[cell] {
	case role:
		return nil
	case Open:
	default:
		return fmt.Errorf("%w: cell %d is %s", ErrCellOccupied, cell, g.cells[cell])
	}
	if *pos != NoCell {
		g.cells[*pos] = Open
	}
	g.cells[cell] = role
	*pos = cell
	return nil
}

// ToggleObstacle flips cell between Open and Blocked and returns the new state.
// Marker cells are left untouched and their state is returned without error.
// Returns ErrOutOfBounds for an invalid id.
func (g *Grid) ToggleObstacle(cell int) (State, error) {
	if !g.Valid(cell) {
		return Open, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfBounds, cell, len(g.cells))
	}
	switch g.cells[cell] {
	case Open:
		g.cells[cell] = Blocked
	case Blocked:
		g.cells[cell] = Open
	}
	return g.cells[cell], nil
}

// SetObstacle sets cell to Blocked (blocked == true) or Open. It is
// idempotent and, like ToggleObstacle, silently ignores marker cells.
func (g *Grid) SetObstacle(cell int, blocked bool) error {
	s, err := g.State(cell)
	if err != nil {
		return fmt.Errorf("%w: %d not in [0,%d)", err, cell, len(g.cells))
	}
	if s == Origin || s == Target {
		return nil
	}
	if blocked {
		g.cells[cell] = Blocked
	} else {
		g.cells[cell] = Open
	}
	return nil
}
