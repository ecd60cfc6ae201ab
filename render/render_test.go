package render_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
)

// ring returns the 3×3 board with a blocked center and its search result.
func ring(t *testing.T) (*grid.Grid, *bfs.Result) {
	t.Helper()
	g, err := grid.New(3)
	require.NoError(t, err)
	require.NoError(t, g.PlaceOrigin(0))
	require.NoError(t, g.PlaceTarget(8))
	_, _ = g.ToggleObstacle(4)
	res, err := bfs.FindPath(0, 8, adjacency.Build(g))
	require.NoError(t, err)
	return g, res
}

func TestText_BareBoard(t *testing.T) {
	g, _ := ring(t)
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, g, nil))
	assert.Equal(t, "S..\n.#.\n..T\n", buf.String())
}

func TestText_WithResult(t *testing.T) {
	g, res := ring(t)
	var buf bytes.Buffer
	require.NoError(t, render.Text(&buf, g, res))
	// path 0,3,6,7,8; 1,2,5 were visited before the target was dequeued
	assert.Equal(t, "Soo\n*#o\n**T\n", buf.String())
}

func TestLayers_Priority(t *testing.T) {
	g, res := ring(t)
	l := render.Layers(g, res)
	assert.Equal(t, render.LayerOrigin, l[0])
	assert.Equal(t, render.LayerVisited, l[1])
	assert.Equal(t, render.LayerPath, l[3])
	assert.Equal(t, render.LayerBlocked, l[4])
	assert.Equal(t, render.LayerTarget, l[8])
}

func TestFrames(t *testing.T) {
	_, res := ring(t)
	frames := render.Frames(res)
	require.Len(t, frames, len(res.Order)+len(res.Path))

	visits, paths := 0, []int{}
	for _, f := range frames {
		switch f.Kind {
		case render.FrameVisit:
			assert.Equal(t, visits, f.Step)
			assert.Equal(t, res.Order[visits], f.Cell)
			visits++
		case render.FramePath:
			require.Equal(t, len(res.Order), visits, "path frames follow all visit frames")
			paths = append(paths, f.Cell)
		}
	}
	assert.Equal(t, res.Path, paths)
	assert.Nil(t, render.Frames(nil))
}

func TestImage(t *testing.T) {
	g, res := ring(t)
	img := render.Image(g, res, render.ImageOptions{CellPixels: 10, Arrows: true})
	b := img.Bounds()
	assert.Equal(t, 30, b.Dx())
	assert.Equal(t, 30, b.Dy())

	plain := render.Image(g, res, render.ImageOptions{CellPixels: 10})
	pal := render.DefaultPalette()
	sameColor(t, pal[render.LayerOrigin], plain.At(b.Min.X+4, b.Min.Y+4))
	sameColor(t, pal[render.LayerBlocked], plain.At(b.Min.X+14, b.Min.Y+14))
	sameColor(t, pal[render.LayerTarget], plain.At(b.Min.X+24, b.Min.Y+24))
}

func TestImage_Defaults(t *testing.T) {
	g, _ := grid.New(2)
	img := render.Image(g, nil, render.ImageOptions{})
	assert.Equal(t, 2*render.DefaultCellPixels, img.Bounds().Dx())
}

func sameColor(t *testing.T, want, got color.Color) {
	t.Helper()
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})
}
