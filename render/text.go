// Package render turns a board and an optional search result into plain
// output: ASCII text, a raster image, or an ordered list of reveal frames.
// Renderers read a board; they never mutate it.
package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// Text runes.
const (
	RuneOpen    = '.'
	RuneBlocked = '#'
	RuneOrigin  = 'S'
	RuneTarget  = 'T'
	RunePath    = '*'
	RuneVisited = 'o'
)

// Layer classifies a cell for rendering, combining board state with a result.
type Layer int

// Layers from lowest to highest drawing priority.
const (
	LayerOpen Layer = iota
	LayerVisited
	LayerPath
	LayerBlocked
	LayerOrigin
	LayerTarget
)

// Layers returns the render layer of every cell. Markers and obstacles win
// over path, path wins over visited. res may be nil.
func Layers(g *grid.Grid, res *bfs.Result) []Layer {
	out := make([]Layer, g.Len())
	if res != nil {
		for _, c := range res.Order {
			if g.Valid(c) {
				out[c] = LayerVisited
			}
		}
		for _, c := range res.Path {
			if g.Valid(c) {
				out[c] = LayerPath
			}
		}
	}
	for c := range out {
		switch s, _ := g.State(c); s {
		case grid.Blocked:
			out[c] = LayerBlocked
		case grid.Origin:
			out[c] = LayerOrigin
		case grid.Target:
			out[c] = LayerTarget
		}
	}
	return out
}

var layerRunes = map[Layer]rune{
	LayerOpen:    RuneOpen,
	LayerVisited: RuneVisited,
	LayerPath:    RunePath,
	LayerBlocked: RuneBlocked,
	LayerOrigin:  RuneOrigin,
	LayerTarget:  RuneTarget,
}

// Text writes one line per board row. res may be nil to draw the bare board.
func Text(w io.Writer, g *grid.Grid, res *bfs.Result) error {
	layers := Layers(g, res)
	bw := bufio.NewWriter(w)
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if _, err := bw.WriteRune(layerRunes[layers[g.Index(r, c)]]); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
