// Package mapgrid maps a continuous world coordinate system onto the
// toroidal grid package: a Layer is a fixed physical extent at a fixed
// resolution whose window follows a moving centre point. Recentering moves
// only the window anchor; the float32 cell buffer is allocated once and
// never copied. Cells never written, or vacated by a window move, hold the
// NaN unset sentinel.
package mapgrid

import (
	"fmt"
	"math"

	"github.com/banshee-data/gridmaps/grid"
	"github.com/banshee-data/gridmaps/internal/monitoring"
)

// MapPosition is a continuous world-space coordinate in metres.
type MapPosition struct {
	X, Y float64
}

// Extent is the fixed physical size of a layer in metres.
type Extent struct {
	Width, Height float64
}

// Sentinel errors for layer combination. Size, position and resolution
// mismatches are reported distinctly so callers can decide whether to
// resample, recenter an operand, or reject.
var (
	ErrSizeMismatch       = fmt.Errorf("mapgrid: operand extents differ")
	ErrPositionMismatch   = fmt.Errorf("mapgrid: operand centres differ")
	ErrResolutionMismatch = fmt.Errorf("mapgrid: operand resolutions differ")
)

// Unset returns the sentinel held by cells that were never written or were
// invalidated by a window move.
func Unset() float32 { return float32(math.NaN()) }

// IsUnset reports whether v is the unset sentinel.
func IsUnset(v float32) bool {
	return math.IsNaN(float64(v))
}

// Layer is a fixed-extent scalar field centred on a movable world position.
// A layer exclusively owns its backing grid; no method locks.
type Layer struct {
	extent     Extent
	resolution float64
	center     MapPosition
	cells      *grid.Grid[float32]
}

// dimEpsilon nudges the extent/resolution quotient before flooring so that
// physically exact ratios (10 m at 0.05 m) land on the integer they
// represent instead of one ULP below it.
const dimEpsilon = 1e-9

func cellsPerAxis(extent, resolution float64) int {
	return int(math.Floor(extent/resolution+dimEpsilon)) + 1
}

// NewLayer creates a layer of the given physical extent and resolution,
// centred on the world origin with every cell unset. Grid dimensions are
// derived as floor(extent/resolution)+1 per axis, so the window covers at
// least the requested extent. Fails without producing a layer when the
// resolution is not a positive finite number or the extent is negative or
// non-finite.
func NewLayer(extent Extent, resolution float64) (*Layer, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("mapgrid: resolution must be positive and finite, got %v", resolution)
	}
	if math.IsNaN(extent.Width) || math.IsInf(extent.Width, 0) ||
		math.IsNaN(extent.Height) || math.IsInf(extent.Height, 0) ||
		extent.Width < 0 || extent.Height < 0 {
		return nil, fmt.Errorf("mapgrid: extent must be finite and non-negative, got %+v", extent)
	}

	cells, err := grid.New[float32](
		cellsPerAxis(extent.Width, resolution),
		cellsPerAxis(extent.Height, resolution),
		Unset(),
	)
	if err != nil {
		return nil, err
	}
	return &Layer{extent: extent, resolution: resolution, cells: cells}, nil
}

// NewLayerAt creates a layer and centres its window on c, matching host
// create calls that supply an initial centre alongside extent and
// resolution.
func NewLayerAt(extent Extent, c MapPosition, resolution float64) (*Layer, error) {
	l, err := NewLayer(extent, resolution)
	if err != nil {
		return nil, err
	}
	l.Recenter(c)
	return l, nil
}

// ExtentSize returns the layer's fixed physical extent.
func (l *Layer) ExtentSize() Extent { return l.extent }

// Resolution returns the metres-per-cell scale.
func (l *Layer) Resolution() float64 { return l.resolution }

// Center returns the current world-space centre of the window.
func (l *Layer) Center() MapPosition { return l.center }

// CellCounts returns the grid dimensions backing the layer.
func (l *Layer) CellCounts() (width, height int) {
	return l.cells.Width(), l.cells.Height()
}

// MapToGrid converts a world position to the grid cell covering it using a
// half-resolution biased round: grid = trunc((map + res/2) / res). Note the
// truncation is toward zero, matching the layer's read/write addressing
// everywhere.
func (l *Layer) MapToGrid(p MapPosition) grid.Position {
	return grid.Position{
		X: int(math.Trunc((p.X + l.resolution/2) / l.resolution)),
		Y: int(math.Trunc((p.Y + l.resolution/2) / l.resolution)),
	}
}

// GridToMap returns the world position of a grid cell as an unbiased linear
// scale: map = grid × resolution. MapToGrid and GridToMap are exact
// inverses only for world positions that are exact multiples of the
// resolution.
func (l *Layer) GridToMap(gp grid.Position) MapPosition {
	return MapPosition{
		X: float64(gp.X) * l.resolution,
		Y: float64(gp.Y) * l.resolution,
	}
}

// Recenter moves the window so it covers the area around c. Values in the
// overlap of the old and new windows survive; vacated cells are reset to
// Unset. Returns the number of cells reset. The backing buffer is never
// copied or reallocated.
func (l *Layer) Recenter(c MapPosition) int {
	l.center = c
	w, h := l.cells.Width(), l.cells.Height()
	off := grid.Position{
		X: int(math.Floor(c.X/l.resolution)) - w/2,
		Y: int(math.Floor(c.Y/l.resolution)) - h/2,
	}
	n := l.cells.Reposition(off)
	monitoring.RecordRecenter(n)
	return n
}

// IsValid reports whether the world position p falls inside the current
// window.
func (l *Layer) IsValid(p MapPosition) bool {
	return l.cells.IsValid(l.MapToGrid(p))
}

// At returns a pointer to the cell covering p, or nil when p is outside the
// current window. Out-of-window probes are routine, not errors. The pointer
// aliases layer storage; it is stale once the cell leaves the window.
func (l *Layer) At(p MapPosition) *float32 {
	return l.cells.Value(l.MapToGrid(p))
}

// Set writes v at p and reports whether p was inside the window.
func (l *Layer) Set(p MapPosition, v float32) bool {
	c := l.At(p)
	if c == nil {
		return false
	}
	*c = v
	return true
}

// Fill overwrites every cell of the backing buffer.
func (l *Layer) Fill(v float32) { l.cells.Fill(v) }

// AtCell reads a cell by grid-space position, for renderers and tools that
// walk the raw grid. nil when outside the window.
func (l *Layer) AtCell(gp grid.Position) *float32 {
	return l.cells.Value(gp)
}

// CellBounds returns the inclusive grid-space corners of the current
// window.
func (l *Layer) CellBounds() (low, high grid.Position) {
	return l.cells.Bounds()
}

// Window returns a row-major cursor over the cells covering the world
// rectangle [low, high], clipped to the current window.
func (l *Layer) Window(low, high MapPosition) *grid.Cursor[float32] {
	return l.cells.Window(l.MapToGrid(low), l.MapToGrid(high))
}
