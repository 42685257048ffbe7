// Package heatmap renders mapgrid layers for inspection: a PNG heatmap via
// gonum/plot and an interactive HTML scatter via go-echarts. Rendering is a
// read-only view of the layer; unset cells are left blank.
package heatmap

import (
	"fmt"
	"math"
	"os"

	"github.com/banshee-data/gridmaps/grid"
	"github.com/banshee-data/gridmaps/mapgrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// layerGrid adapts a Layer to plotter.GridXYZ. Columns and rows walk the
// non-aliased window rectangle; Z reports NaN for unset cells so they are
// not drawn.
type layerGrid struct {
	l *mapgrid.Layer
}

func (g layerGrid) Dims() (c, r int) { return g.l.CellCounts() }

func (g layerGrid) X(c int) float64 {
	low, _ := g.l.CellBounds()
	return g.l.GridToMap(grid.Position{X: low.X + c}).X
}

func (g layerGrid) Y(r int) float64 {
	low, _ := g.l.CellBounds()
	return g.l.GridToMap(grid.Position{Y: low.Y + r}).Y
}

func (g layerGrid) Z(c, r int) float64 {
	low, _ := g.l.CellBounds()
	v := g.l.AtCell(grid.Position{X: low.X + c, Y: low.Y + r})
	if v == nil || mapgrid.IsUnset(*v) {
		return math.NaN()
	}
	return float64(*v)
}

// PNG writes a heatmap of the layer's current window to path. Colour range
// spans the set values; a layer with no set cells renders as an empty
// frame.
func PNG(l *mapgrid.Layer, path, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	hm := plotter.NewHeatMap(layerGrid{l: l}, rampPalette(256))
	min, max, ok := l.MinMax()
	if !ok {
		min, max = 0, 1
	}
	if min == max {
		// degenerate range; widen so the palette lookup stays defined
		max = min + 1
	}
	hm.Min, hm.Max = min, max
	p.Add(hm)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save heatmap %s: %w", path, err)
	}
	return nil
}

// collectCells gathers the world position and value of every set cell.
func collectCells(l *mapgrid.Layer) (pos []mapgrid.MapPosition, vals []float64) {
	low, _ := l.CellBounds()
	w, h := l.CellCounts()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gp := grid.Position{X: low.X + x, Y: low.Y + y}
			v := l.AtCell(gp)
			if v == nil || mapgrid.IsUnset(*v) {
				continue
			}
			pos = append(pos, l.GridToMap(gp))
			vals = append(vals, float64(*v))
		}
	}
	return pos, vals
}

func writeFile(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
