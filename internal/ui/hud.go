//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/config"
	"lifegrid/internal/control"
)

// HUD paints the strip under the board: the banner image when one was
// loaded, otherwise a status line.
type HUD struct {
	layout    config.Layout
	toggleKey string
	banner    *ebiten.Image
	panel     *ebiten.Image
}

// NewHUD constructs a HUD. banner may be nil.
func NewHUD(l config.Layout, toggleKey string, banner *ebiten.Image) *HUD {
	h := &HUD{layout: l, toggleKey: toggleKey, banner: banner}
	if l.Strip > 0 && l.Width() > 0 {
		h.panel = ebiten.NewImage(l.Width(), l.Strip)
	}
	return h
}

// Draw paints the strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image, stats control.Stats) {
	if h == nil || h.panel == nil {
		return
	}
	top := float64(h.layout.GridHeight())

	if h.banner != nil {
		b := h.banner.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(h.layout.Width())/float64(b.Dx()), float64(h.layout.Strip)/float64(b.Dy()))
		op.GeoM.Translate(0, top)
		screen.DrawImage(h.banner, op)
		return
	}

	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	baseline := (h.layout.Strip + face.Ascent) / 2
	text.Draw(h.panel, StatusLine(stats, h.toggleKey), face, 4, baseline, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, top)
	screen.DrawImage(h.panel, op)
}
