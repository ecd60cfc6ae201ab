package render

import (
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// DefaultCellPixels is the side of one cell when ImageOptions.CellPixels is unset.
const DefaultCellPixels = 24

// Palette maps each layer to a fill color.
type Palette map[Layer]color.Color

// DefaultPalette returns the standard colors: white open cells, pale blue
// visited cells, yellow path, dark walls, green origin, red target.
func DefaultPalette() Palette {
	return Palette{
		LayerOpen:    color.White,
		LayerVisited: color.RGBA{R: 0xbb, G: 0xdd, B: 0xff, A: 0xff},
		LayerPath:    color.RGBA{R: 0xff, G: 0xdd, B: 0x33, A: 0xff},
		LayerBlocked: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		LayerOrigin:  color.RGBA{R: 0x22, G: 0xaa, B: 0x44, A: 0xff},
		LayerTarget:  color.RGBA{R: 0xdd, G: 0x22, B: 0x22, A: 0xff},
	}
}

// ImageOptions tunes Image.
type ImageOptions struct {
	// CellPixels is the side of one cell; values < 4 fall back to DefaultCellPixels.
	CellPixels int
	// Palette overrides DefaultPalette entries.
	Palette Palette
	// Arrows draws a direction arrow on every path cell except the target.
	Arrows bool
	// HideVisited draws visited cells as open.
	HideVisited bool
}

// Image draws the board as a CellPixels·N square raster with a one-pixel
// grid line between cells. res may be nil.
func Image(g *grid.Grid, res *bfs.Result, opts ImageOptions) image.Image {
	px := opts.CellPixels
	if px < 4 {
		px = DefaultCellPixels
	}
	pal := DefaultPalette()
	for k, v := range opts.Palette {
		pal[k] = v
	}

	layers := Layers(g, res)
	n := g.Size()
	comp := image_utils.NewCompositeImage()
	comp.AddImage(swatch(color.Gray{Y: 0x99}, n*px, n*px), image.Pt(0, 0))

	cache := make(map[Layer]image.Image, len(pal))
	for c, l := range layers {
		if opts.HideVisited && l == LayerVisited {
			l = LayerOpen
		}
		sw, ok := cache[l]
		if !ok {
			sw = swatch(pal[l], px-1, px-1)
			cache[l] = sw
		}
		r, col := g.Coordinate(c)
		comp.AddImage(sw, image.Pt(col*px, r*px))
	}

	if opts.Arrows && res != nil && res.Found {
		for _, a := range pathArrows(g, res.Path, px) {
			comp.AddImage(a.pic, a.at)
		}
	}
	return image_utils.ToRGBA(comp)
}

// swatch returns a w×h solid image of c, scaled up from a single pixel.
func swatch(c color.Color, w, h int) image.Image {
	dot := image.NewRGBA(image.Rect(0, 0, 1, 1))
	dot.Set(0, 0, c)
	return image_utils.ResizeImage(dot, w, h)
}

// placed is an image and its top-left position on the board raster.
type placed struct {
	pic image.Image
	at  image.Point
}

// pathArrows returns, for each path cell but the last, a half-cell arrow
// centered on the cell and pointing at the next one.
func pathArrows(g *grid.Grid, path []int, px int) []placed {
	side := px / 2
	arrowColor := color.Black
	out := make([]placed, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		r0, c0 := g.Coordinate(path[i])
		r1, c1 := g.Coordinate(path[i+1])
		var tmp image.Image
		switch {
		case r1 < r0:
			tmp = image_utils.UpArrow(arrowColor)
		case r1 > r0:
			tmp = image_utils.DownArrow(arrowColor)
		case c1 < c0:
			tmp = image_utils.LeftArrow(arrowColor)
		default:
			tmp = image_utils.RightArrow(arrowColor)
		}
		out = append(out, placed{
			pic: image_utils.ResizeImage(tmp, side, side),
			at:  image.Pt(c0*px+px/4, r0*px+px/4),
		})
	}
	return out
}
