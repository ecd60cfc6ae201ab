// Package board loads board descriptions (size, markers, obstacles and an
// optional ASCII layout) from YAML or HCL files and turns them into sessions.
//
// YAML:
//
//	size: 5
//	origin: 0
//	target: 24
//	obstacles: [6, 7, 8]
//
// HCL:
//
//	size      = 5
//	origin    = 0
//	target    = 24
//	obstacles = [6, 7, 8]
//
// Either format may use a layout instead of (or on top of) ids:
//
//	layout:
//	  - "S...."
//	  - "####."
//	  - "....T"
//
// Layout runes: '.' open, '#' blocked, 'S' origin, 'T' target.
package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// Sentinel errors for board loading.
var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .hcl.
	ErrUnknownFormat = errors.New("board: unknown file format")
	// ErrLayout indicates a malformed layout.
	ErrLayout = errors.New("board: invalid layout")
	// ErrIncomplete indicates a missing size or a single missing marker.
	ErrIncomplete = errors.New("board: incomplete description")
)

// Layout runes.
const (
	RuneOpen    = '.'
	RuneBlocked = '#'
	RuneOrigin  = 'S'
	RuneTarget  = 'T'
)

// Board is a decoded board description. Origin and Target are optional; when
// both are absent the markers are placed at random.
type Board struct {
	Size      int      `yaml:"size,omitempty" hcl:"size,optional"`
	Origin    *int     `yaml:"origin,omitempty" hcl:"origin,optional"`
	Target    *int     `yaml:"target,omitempty" hcl:"target,optional"`
	Obstacles []int    `yaml:"obstacles,omitempty" hcl:"obstacles,optional"`
	Layout    []string `yaml:"layout,omitempty" hcl:"layout,optional"`
}

// Normalize folds Layout into Size, Origin, Target and Obstacles and checks
// that the description is complete. Obstacles come out sorted and unique.
func (b *Board) Normalize() error {
	if len(b.Layout) > 0 {
		if err := b.applyLayout(); err != nil {
			return err
		}
	}
	if b.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", ErrIncomplete, b.Size)
	}
	if (b.Origin == nil) != (b.Target == nil) {
		return fmt.Errorf("%w: origin and target must both be set or both omitted", ErrIncomplete)
	}
	b.Obstacles = uniqueSorted(b.Obstacles)
	return nil
}

func (b *Board) applyLayout() error {
	n := len(b.Layout)
	if b.Size != 0 && b.Size != n {
		return fmt.Errorf("%w: size %d but layout has %d rows", ErrLayout, b.Size, n)
	}
	b.Size = n
	for r, row := range b.Layout {
		runes := []rune(row)
		if len(runes) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, r, len(runes), n)
		}
		for c, ch := range runes {
			id := r*n + c
			switch ch {
			case RuneOpen:
			case RuneBlocked:
				b.Obstacles = append(b.Obstacles, id)
			case RuneOrigin:
				if b.Origin != nil && *b.Origin != id {
					return fmt.Errorf("%w: more than one origin", ErrLayout)
				}
				b.Origin = intPtr(id)
			case RuneTarget:
				if b.Target != nil && *b.Target != id {
					return fmt.Errorf("%w: more than one target", ErrLayout)
				}
				b.Target = intPtr(id)
			default:
				return fmt.Errorf("%w: unexpected %q at row %d col %d", ErrLayout, ch, r, c)
			}
		}
	}
	b.Layout = nil
	return nil
}

// Session normalizes b and builds a session from it. Obstacles are applied
// before markers, so a marker on an obstacle fails with grid.ErrCellOccupied.
func (b Board) Session(opts ...pathfinder.Option) (*pathfinder.Session, error) {
	if err := b.Normalize(); err != nil {
		return nil, err
	}
	s, err := pathfinder.ConfigureGrid(b.Size, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Apply(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply writes obstacles and markers of a normalized b onto s. Markers
// already on s are lifted first so that every declared obstacle lands. When
// b has no markers they are randomized with the session source.
func (b Board) Apply(s *pathfinder.Session) error {
	s.ClearMarkers()
	for _, c := range b.Obstacles {
		if err := s.SetObstacle(c, true); err != nil {
			return fmt.Errorf("board: obstacle %d: %w", c, err)
		}
	}
	if b.Origin == nil {
		return s.RandomizeMarkers(nil)
	}
	if err := s.SetMarker(pathfinder.RoleOrigin, *b.Origin); err != nil {
		return fmt.Errorf("board: origin: %w", err)
	}
	if err := s.SetMarker(pathfinder.RoleTarget, *b.Target); err != nil {
		return fmt.Errorf("board: target: %w", err)
	}
	return nil
}

// FromGrid describes g as a Board with an ASCII layout.
func FromGrid(g *grid.Grid) Board {
	n := g.Size()
	rows := make([]string, n)
	for r := 0; r < n; r++ {
		buf := make([]rune, n)
		for c := 0; c < n; c++ {
			s, _ := g.State(g.Index(r, c))
			switch s {
			case grid.Blocked:
				buf[c] = RuneBlocked
			case grid.Origin:
				buf[c] = RuneOrigin
			case grid.Target:
				buf[c] = RuneTarget
			default:
				buf[c] = RuneOpen
			}
		}
		rows[r] = string(buf)
	}
	return Board{Size: n, Layout: rows}
}

func uniqueSorted(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := append([]int(nil), in...)
	sort.Ints(out)
	k := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[k-1] {
			out[k] = out[i]
			k++
		}
	}
	return out[:k]
}

func intPtr(v int) *int { return &v }
