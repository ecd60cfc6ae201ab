package pathfinder

import "fmt"

// Drag is one marker-repositioning gesture. It carries the dragged role from
// BeginDrag to Drop or Cancel and is then spent; nothing outlives the gesture.
// A Drag is meant for a single goroutine.
type Drag struct {
	s    *Session
	role Role
	done bool
}

// BeginDrag starts a gesture for role.
func (s *Session) BeginDrag(role Role) (*Drag, error) {
	if role != RoleOrigin && role != RoleTarget {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(role))
	}
	return &Drag{s: s, role: role}, nil
}

// Role returns the marker being dragged.
func (d *Drag) Role() Role { return d.role }

// Drop ends the gesture by moving the marker to cell. The gesture ends even
// when the move is rejected (the marker then stays where it was).
// Errors: ErrDragFinished, grid.ErrOutOfBounds, grid.ErrCellOccupied.
func (d *Drag) Drop(cell int) error {
	if d.done {
		return ErrDragFinished
	}
	d.done = true
	return d.s.SetMarker(d.role, cell)
}

// Cancel ends the gesture without moving the marker.
func (d *Drag) Cancel() { d.done = true }

// Done reports whether the gesture has ended.
func (d *Drag) Done() bool { return d.done }
