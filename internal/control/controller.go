// Package control turns host input into board edits and mode changes and
// drives the rule engine once per rendered frame.
package control

import (
	"lifegrid/internal/core"
)

// Result describes what a single event did.
type Result uint8

const (
	Ignored Result = iota
	Toggled
	ModeChanged
	Quit
)

// Controller is the edit/run state machine.
type Controller struct {
	mode      core.Mode
	pitch     int
	toggleKey core.Key
	quit      bool
}

// NewController returns a controller in edit mode. pitch is the pixel distance
// between cell origins used to map pointer coordinates to cells.
func NewController(pitch int, toggleKey core.Key) *Controller {
	if pitch <= 0 {
		pitch = 1
	}
	if toggleKey == "" {
		toggleKey = core.KeySpace
	}
	return &Controller{mode: core.ModeEdit, pitch: pitch, toggleKey: toggleKey}
}

// Mode returns the active mode.
func (c *Controller) Mode() core.Mode { return c.mode }

// Quitting reports whether a quit event has been seen.
func (c *Controller) Quitting() bool { return c.quit }

// CellAt maps canvas pixel (x, y) to a board coordinate. Negative pixels map
// to negative coordinates so callers can reject them with a bounds check.
func (c *Controller) CellAt(x, y int) (r, col int) {
	return floorDiv(y, c.pitch), floorDiv(x, c.pitch)
}

// Apply handles one event against g.
func (c *Controller) Apply(g *core.Grid, ev core.Event) Result {
	if c.quit {
		return Ignored
	}
	switch ev.Kind {
	case core.EventQuit:
		c.quit = true
		return Quit
	case core.EventKeyPress:
		if ev.Key != c.toggleKey {
			return Ignored
		}
		c.mode = c.mode.Toggled()
		return ModeChanged
	case core.EventPointerPress:
		if c.mode != core.ModeEdit || ev.Button != core.ButtonPrimary {
			return Ignored
		}
		r, col := c.CellAt(ev.X, ev.Y)
		if !g.Toggle(r, col) {
			return Ignored
		}
		return Toggled
	}
	return Ignored
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
