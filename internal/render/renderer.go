//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
)

// GridPainter keeps an RGBA image of the board area in sync with a grid.
type GridPainter struct {
	layout  config.Layout
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for the board area of l.
func NewGridPainter(l config.Layout, p Palette) *GridPainter {
	gp := &GridPainter{layout: l, palette: p, buf: make([]byte, BufferSize(l))}
	gp.img = ebiten.NewImage(l.Width(), l.GridHeight())
	return gp
}

// Draw paints v and copies the result to the top-left of dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, v core.View) {
	if v.Rows() != gp.layout.Rows || v.Cols() != gp.layout.Cols {
		return
	}
	PaintGrid(gp.buf, v, gp.layout, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.layout.Width(), gp.layout.GridHeight() }
