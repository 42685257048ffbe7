// gridmap-render builds a rolling-window layer, writes a synthetic
// obstacle field into it, drags the window along a path, derives a
// traversal-cost layer and renders PNG/HTML views of both. It exists to
// eyeball window invalidation and the derive hook without a robot attached.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/banshee-data/gridmaps/internal/heatmap"
	"github.com/banshee-data/gridmaps/internal/monitoring"
	"github.com/banshee-data/gridmaps/mapgrid"
)

func main() {
	extentW := flag.Float64("extent-width", 10, "Layer width in metres")
	extentH := flag.Float64("extent-height", 10, "Layer height in metres")
	resolution := flag.Float64("resolution", 0.1, "Cell size in metres")
	steps := flag.Int("steps", 8, "Recenter steps along the demo path")
	stride := flag.Float64("stride", 0.5, "Distance per recenter step in metres")
	outDir := flag.String("out", "renders", "Output directory for PNG/HTML files")
	html := flag.Bool("html", true, "Also write interactive HTML views")
	flag.Parse()

	if err := run(*extentW, *extentH, *resolution, *steps, *stride, *outDir, *html); err != nil {
		fmt.Fprintf(os.Stderr, "gridmap-render: %v\n", err)
		os.Exit(1)
	}
}

func run(extentW, extentH, resolution float64, steps int, stride float64, outDir string, html bool) error {
	monitoring.Reset()

	layer, err := mapgrid.NewLayer(mapgrid.Extent{Width: extentW, Height: extentH}, resolution)
	if err != nil {
		return err
	}
	w, h := layer.CellCounts()
	monitoring.Logf("created layer %dx%d cells (%.1fx%.1fm @ %.3fm)", w, h, extentW, extentH, resolution)

	paintObstacles(layer)

	// drag the window diagonally; stored obstacles inside the overlap
	// survive each step, vacated cells reset
	for i := 1; i <= steps; i++ {
		c := mapgrid.MapPosition{X: float64(i) * stride, Y: float64(i) * stride}
		n := layer.Recenter(c)
		monitoring.Logf("recenter %d to (%.2f, %.2f): %d cells invalidated", i, c.X, c.Y, n)
		paintObstacles(layer)
	}

	recenters, invalidated := monitoring.Snapshot()
	monitoring.Logf("path complete: %d recenters, %d cells invalidated total", recenters, invalidated)
	monitoring.Logf("occupancy: %s", heatmap.Summary(layer))

	cost, err := layer.Derive(makeTraverse)
	if err != nil {
		return fmt.Errorf("derive traversal cost: %w", err)
	}
	monitoring.Logf("traversal cost: %s", heatmap.Summary(cost))

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outputs := []struct {
		layer *mapgrid.Layer
		name  string
		title string
	}{
		{layer, "occupancy", "Occupancy layer"},
		{cost, "traverse", "Traversal-cost layer"},
	}
	for _, o := range outputs {
		png := filepath.Join(outDir, o.name+".png")
		if err := heatmap.PNG(o.layer, png, o.title); err != nil {
			return err
		}
		monitoring.Logf("wrote %s", png)
		if html {
			page := filepath.Join(outDir, o.name+".html")
			if err := heatmap.HTML(o.layer, page, o.title); err != nil {
				return err
			}
			monitoring.Logf("wrote %s", page)
		}
	}
	return nil
}

// paintObstacles writes a ring of occupied cells plus a straight wall into
// the window around the current centre. Occupancy is 1, free space 0.
func paintObstacles(l *mapgrid.Layer) {
	c := l.Center()
	ext := l.ExtentSize()
	res := l.Resolution()

	ringR := math.Min(ext.Width, ext.Height) / 3
	for a := 0.0; a < 2*math.Pi; a += res / ringR {
		p := mapgrid.MapPosition{X: c.X + ringR*math.Cos(a), Y: c.Y + ringR*math.Sin(a)}
		l.Set(p, 1)
	}

	for x := c.X - ext.Width/4; x <= c.X+ext.Width/4; x += res {
		l.Set(mapgrid.MapPosition{X: x, Y: c.Y}, 1)
	}

	// mark free space along the window edge of travel so the cost layer
	// shows contrast
	for x := c.X - ext.Width/2; x <= c.X+ext.Width/2; x += res {
		p := mapgrid.MapPosition{X: x, Y: c.Y - ext.Height/3}
		if v := l.At(p); v != nil && mapgrid.IsUnset(*v) {
			*v = 0
		}
	}
}

// makeTraverse is the derive transform a planner host would plug in:
// occupied cells become expensive, free cells cheap, unknown cells stay
// unknown.
func makeTraverse(in *mapgrid.Layer) (*mapgrid.Layer, error) {
	const (
		freeCost     = 1
		obstacleCost = 10
	)
	return in.Apply(func(v float32) float32 {
		switch {
		case mapgrid.IsUnset(v):
			return v
		case v >= 0.5:
			return obstacleCost
		default:
			return freeCost
		}
	}), nil
}
