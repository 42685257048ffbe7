// Package grid implements a fixed-capacity dense 2D buffer addressed
// through a re-anchorable toroidal window. Storage is allocated once and
// never moves; re-anchoring the window changes only a coordinate offset and
// resets the cells whose logical identity left the window. The package is
// deliberately ignorant of world coordinates — see the mapgrid package for
// the resolution-scaled layer built on top of it.
package grid

import (
	"fmt"
	"math"
)

// Position is an unbounded grid-space coordinate. The window maps a bounded
// range of positions onto physical storage; positions outside that range
// are representable but not addressable.
type Position struct {
	X, Y int
}

// Sentinel errors for pointwise combination of two grids.
var (
	ErrSizeMismatch     = fmt.Errorf("grid: operand dimensions differ")
	ErrPositionMismatch = fmt.Errorf("grid: operand window offsets differ")
)

// Grid is the toroidal window over a dense width×height buffer of T cells.
// A single grid has a single exclusive owner; no method locks.
type Grid[T any] struct {
	width   int
	height  int
	cells   []T
	offsetX int
	offsetY int
	unset   T
}

// New creates a width×height grid with every cell set to the unset sentinel
// and the window centred on the grid-space origin.
func New[T any](width, height int, unset T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid: dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("grid: cannot allocate %dx%d cells: capacity overflows", width, height)
	}
	g := &Grid[T]{
		width:   width,
		height:  height,
		cells:   make([]T, width*height),
		offsetX: -(width / 2),
		offsetY: -(height / 2),
		unset:   unset,
	}
	g.Fill(unset)
	return g, nil
}

// Width returns the physical cell count along x.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the physical cell count along y.
func (g *Grid[T]) Height() int { return g.height }

// Offset returns the grid-space position of the window's logical origin.
func (g *Grid[T]) Offset() Position { return Position{X: g.offsetX, Y: g.offsetY} }

// Bounds returns the inclusive corners of the current window. They match
// IsValid, so the high corner carries the extra aliased row and column.
func (g *Grid[T]) Bounds() (low, high Position) {
	return Position{X: g.offsetX, Y: g.offsetY},
		Position{X: g.offsetX + g.width, Y: g.offsetY + g.height}
}

// IsValid reports whether p lies inside the current window. The check is
// inclusive on both ends per axis: positions up to offset+width (not
// offset+width-1) are accepted, so the window admits one extra row and one
// extra column that alias the opposite physical edge of the buffer.
func (g *Grid[T]) IsValid(p Position) bool {
	dx := p.X - g.offsetX
	dy := p.Y - g.offsetY
	return dx >= 0 && dx <= g.width && dy >= 0 && dy <= g.height
}

// euclidMod returns the non-negative remainder of v mod m, regardless of
// the sign of v.
func euclidMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Index maps p onto the physical buffer by wrapping each axis. It performs
// no window check; pair it with IsValid.
func (g *Grid[T]) Index(p Position) int {
	return euclidMod(p.Y, g.height)*g.width + euclidMod(p.X, g.width)
}

// Value returns a pointer to the cell backing p, or nil when p is outside
// the current window. The pointer aliases the grid's storage; keeping at
// most one live mutable handle per cell is the caller's responsibility.
func (g *Grid[T]) Value(p Position) *T {
	if !g.IsValid(p) {
		return nil
	}
	return &g.cells[g.Index(p)]
}

// Fill overwrites every physical cell unconditionally.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Unset returns the sentinel this grid resets vacated cells to.
func (g *Grid[T]) Unset() T { return g.unset }

// Reposition re-anchors the window at off without moving or copying any
// stored data. Cells whose position under the old window is no longer
// valid under the new one are reset to the unset sentinel; cells in the
// overlap keep their values. Returns the number of cells reset.
//
// The sweep walks the old window's non-aliased width×height rectangle, so
// the cost is O(width×height) independent of how far the window moved.
func (g *Grid[T]) Reposition(off Position) int {
	oldX, oldY := g.offsetX, g.offsetY
	g.offsetX, g.offsetY = off.X, off.Y
	if oldX == off.X && oldY == off.Y {
		return 0
	}

	invalidated := 0
	for y := oldY; y < oldY+g.height; y++ {
		for x := oldX; x < oldX+g.width; x++ {
			p := Position{X: x, Y: y}
			if g.IsValid(p) {
				continue
			}
			g.cells[g.Index(p)] = g.unset
			invalidated++
		}
	}
	return invalidated
}

// Combine produces a new, independently owned grid by applying op to each
// pair of cells. Operands must agree on dimensions (ErrSizeMismatch) and
// window offset (ErrPositionMismatch); neither operand is mutated.
func (g *Grid[T]) Combine(other *Grid[T], op func(a, b T) T) (*Grid[T], error) {
	if g.width != other.width || g.height != other.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrSizeMismatch, g.width, g.height, other.width, other.height)
	}
	if g.offsetX != other.offsetX || g.offsetY != other.offsetY {
		return nil, fmt.Errorf("%w: (%d,%d) vs (%d,%d)",
			ErrPositionMismatch, g.offsetX, g.offsetY, other.offsetX, other.offsetY)
	}

	out := g.emptyClone()
	for i := range g.cells {
		out.cells[i] = op(g.cells[i], other.cells[i])
	}
	return out, nil
}

// Apply produces a new grid of identical shape and offset with op applied
// to every cell. The receiver is not mutated.
func (g *Grid[T]) Apply(op func(T) T) *Grid[T] {
	out := g.emptyClone()
	for i := range g.cells {
		out.cells[i] = op(g.cells[i])
	}
	return out
}

// emptyClone allocates a grid with the receiver's shape, offset and
// sentinel but zero-valued cells. Callers fill every cell themselves.
func (g *Grid[T]) emptyClone() *Grid[T] {
	return &Grid[T]{
		width:   g.width,
		height:  g.height,
		cells:   make([]T, len(g.cells)),
		offsetX: g.offsetX,
		offsetY: g.offsetY,
		unset:   g.unset,
	}
}
