package core

// View is the read-only surface of a grid handed to renderers.
type View interface {
	Rows() int
	Cols() int
	Alive(r, c int) bool
}

// Grid stores a fixed-size 2D board of binary cells in row-major order.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (r, c).
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// In reports whether (r, c) lies on the board.
func (g *Grid) In(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Alive reports whether the cell at (r, c) is alive. Off-board cells are dead.
func (g *Grid) Alive(r, c int) bool {
	if !g.In(r, c) {
		return false
	}
	return g.data[r*g.cols+c] != 0
}

// Set writes the cell at (r, c). Off-board writes are ignored.
func (g *Grid) Set(r, c int, alive bool) {
	if !g.In(r, c) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.data[r*g.cols+c] = v
}

// Toggle flips the cell at (r, c) and reports whether anything changed.
func (g *Grid) Toggle(r, c int) bool {
	if !g.In(r, c) {
		return false
	}
	idx := r*g.cols + c
	g.data[idx] ^= 1
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// SameShape reports whether o has the same dimensions as g.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.rows == o.rows && g.cols == o.cols
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
