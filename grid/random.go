// Package grid - seeded marker and obstacle placement.
//
// math/rand.Rand is NOT goroutine-safe. Callers own the source and must not
// share it across goroutines.
package grid

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is used whenever a nil random source is supplied.
const DefaultSeed int64 = 1

// NewRand returns a deterministic source. seed==0 selects DefaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomizeMarkers lifts both markers and places them on two distinct
// non-blocked cells chosen by shuffling the free cells: the origin takes the
// first cell of the shuffled order, the target the last.
// A nil rng uses DefaultSeed. Returns ErrTooFewCells when fewer than two
// cells are free; the grid is left unchanged in that case.
// Complexity: O(N²).
func (g *Grid) RandomizeMarkers(rng *rand.Rand) error {
	free := g.FreeCells()
	if len(free) < 2 {
		return fmt.Errorf("%w: %d free", ErrTooFewCells, len(free))
	}
	if rng == nil {
		rng = NewRand(0)
	}
	shuffle(free, rng)
	g.ClearMarkers()
	g.cells[free[0]] = Origin
	g.origin = free[0]
	g.cells[free[len(free)-1]] = Target
	g.target = free[len(free)-1]
	return nil
}

// ScatterObstacles blocks each Open cell independently with probability
// density, leaving markers in place. density is clamped to [0,1].
// Returns the number of cells blocked.
func (g *Grid) ScatterObstacles(rng *rand.Rand, density float64) int {
	if rng == nil {
		rng = NewRand(0)
	}
	switch {
	case density < 0:
		density = 0
	case density > 1:
		density = 1
	}
	n := 0
	for id, s := range g.cells {
		if s != Open {
			continue
		}
		if rng.Float64() < density {
			g.cells[id] = Blocked
			n++
		}
	}
	return n
}

// ClearMarkers lifts both markers, leaving their cells Open.
func (g *Grid) ClearMarkers() {
	if g.origin != NoCell {
		g.cells[g.origin] = Open
		g.origin = NoCell
	}
	if g.target != NoCell {
		g.cells[g.target] = Open
		g.target = NoCell
	}
}
