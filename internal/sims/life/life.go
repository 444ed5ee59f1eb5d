// Package life implements Conway's Game of Life on a bounded grid. Cells past
// the edge count as dead; the board does not wrap.
package life

import (
	"lifegrid/internal/core"
)

// Neighbors counts live cells in the Moore neighbourhood of (r, c).
func Neighbors(g *core.Grid, r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(r+dr, c+dc) {
				n++
			}
		}
	}
	return n
}

// Next writes the generation after src into dst. dst must have the same shape
// as src and must not alias it.
func Next(dst, src *core.Grid) {
	rows, cols := src.Rows(), src.Cols()
	out := dst.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := Neighbors(src, r, c)
			alive := src.Alive(r, c)
			idx := src.Index(r, c)
			out[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				out[idx] = 1
			}
		}
	}
}

// Step returns the generation after g. g is left untouched.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Rows(), g.Cols())
	Next(next, g)
	return next
}

// Life holds a board and its scratch buffer and swaps them every Step.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
	gen int
}

// New returns a Life simulation with an empty rows x cols board.
func New(rows, cols int) *Life {
	cur := core.NewGrid(rows, cols)
	return &Life{cur: cur, nxt: core.NewGrid(cur.Rows(), cur.Cols())}
}

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns how many steps have run.
func (l *Life) Generation() int { return l.gen }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	Next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
