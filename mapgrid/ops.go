package mapgrid

import (
	"fmt"

	"github.com/banshee-data/gridmaps/grid"
)

// Combine produces a new, independently owned layer by applying op to each
// pair of cells. Operands must agree on extent (ErrSizeMismatch), centre
// (ErrPositionMismatch) and resolution (ErrResolutionMismatch); matching
// window offsets alone would not guarantee matching physical extents or
// world alignment, so the layer check is stricter than the grid-level one.
// Neither operand is mutated.
func (l *Layer) Combine(other *Layer, op func(a, b float32) float32) (*Layer, error) {
	if l.extent != other.extent {
		return nil, fmt.Errorf("%w: %+v vs %+v", ErrSizeMismatch, l.extent, other.extent)
	}
	if l.center != other.center {
		return nil, fmt.Errorf("%w: %+v vs %+v", ErrPositionMismatch, l.center, other.center)
	}
	if l.resolution != other.resolution {
		return nil, fmt.Errorf("%w: %v vs %v", ErrResolutionMismatch, l.resolution, other.resolution)
	}

	cells, err := l.cells.Combine(other.cells, op)
	if err != nil {
		return nil, err
	}
	return &Layer{extent: l.extent, resolution: l.resolution, center: l.center, cells: cells}, nil
}

// Apply produces a new layer of identical shape, centre and resolution with
// op applied to every cell. The receiver is not mutated.
func (l *Layer) Apply(op func(float32) float32) *Layer {
	return &Layer{
		extent:     l.extent,
		resolution: l.resolution,
		center:     l.center,
		cells:      l.cells.Apply(op),
	}
}

// Derive routes the layer through fn, the hook a host uses to build a
// secondary layer (a traversal-cost map, say) from an existing one. The
// library only exposes the read/write/iterate surface fn needs; it defines
// no transforms of its own.
func (l *Layer) Derive(fn func(*Layer) (*Layer, error)) (*Layer, error) {
	if fn == nil {
		return nil, fmt.Errorf("mapgrid: nil derive transform")
	}
	return fn(l)
}

// MinMax returns the smallest and largest set values currently stored,
// skipping unset cells. ok is false when every cell is unset.
func (l *Layer) MinMax() (min, max float64, ok bool) {
	low, _ := l.cells.Bounds()
	w, h := l.cells.Width(), l.cells.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := l.cells.Value(grid.Position{X: low.X + x, Y: low.Y + y})
			if v == nil || IsUnset(*v) {
				continue
			}
			f := float64(*v)
			if !ok {
				min, max, ok = f, f, true
				continue
			}
			if f < min {
				min = f
			}
			if f > max {
				max = f
			}
		}
	}
	return min, max, ok
}
