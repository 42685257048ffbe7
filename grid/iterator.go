package grid

// Cursor is a single-pass cursor over the intersection of a requested
// rectangle and the grid's current window. Traversal is row-major: rows in
// ascending y, cells within a row in ascending x, both ends of the clipped
// range inclusive.
//
// Both the start and the termination bounds are clipped to the window, so
// the cursor only ever yields positions inside the clipped rectangle. The
// clip uses the same inclusive window bounds as IsValid, which means the
// far edge row/column is reachable and aliases cells on the near physical
// edge.
type Cursor[T any] struct {
	g     *Grid[T]
	x, y  int
	lowX  int
	highX int
	highY int
}

// Window returns a cursor over the rectangle [low, high], clipped per axis
// to the current window. An empty intersection yields no cells.
func (g *Grid[T]) Window(low, high Position) *Cursor[T] {
	wlow, whigh := g.Bounds()
	c := &Cursor[T]{
		g:     g,
		lowX:  max(low.X, wlow.X),
		highX: min(high.X, whigh.X),
		highY: min(high.Y, whigh.Y),
	}
	c.x = c.lowX
	c.y = max(low.Y, wlow.Y)
	return c
}

// Next yields the next position and a pointer to its cell, or ok == false
// once the rectangle is exhausted. The pointer aliases grid storage and
// must not outlive the grid.
func (c *Cursor[T]) Next() (pos Position, cell *T, ok bool) {
	if c.lowX > c.highX || c.y > c.highY {
		return Position{}, nil, false
	}
	pos = Position{X: c.x, Y: c.y}
	cell = &c.g.cells[c.g.Index(pos)]
	c.x++
	if c.x > c.highX {
		c.x = c.lowX
		c.y++
	}
	return pos, cell, true
}
