package render

import (
	"image/color"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
)

// Palette holds the colours used to paint the board.
type Palette struct {
	On         color.Color
	Off        color.Color
	Background color.Color
}

// DefaultPalette paints live cells white and dead cells black on a dark grey
// background that shows through the cell borders.
func DefaultPalette() Palette {
	return Palette{
		On:         color.White,
		Off:        color.Black,
		Background: color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
	}
}

// BufferSize returns the byte length of an RGBA buffer for the board area.
func BufferSize(l config.Layout) int {
	return 4 * l.Width() * l.GridHeight()
}

// PaintGrid renders v into buf as RGBA pixels covering the board area of l
// (the banner strip is not included). buf must hold BufferSize(l) bytes.
func PaintGrid(buf []byte, v core.View, l config.Layout, p Palette) {
	if len(buf) < BufferSize(l) {
		return
	}
	on := toRGBA(p.On)
	off := toRGBA(p.Off)
	bg := toRGBA(p.Background)

	fill(buf, bg)
	stride := l.Width() * 4
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			col := off
			if v.Alive(r, c) {
				col = on
			}
			x, y, w, h := l.CellRect(r, c)
			for py := y; py < y+h; py++ {
				row := buf[py*stride : (py+1)*stride]
				for px := x; px < x+w; px++ {
					base := px * 4
					row[base+0] = col.R
					row[base+1] = col.G
					row[base+2] = col.B
					row[base+3] = col.A
				}
			}
		}
	}
}

func fill(buf []byte, col color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
