package heatmap

import (
	"fmt"

	"github.com/banshee-data/gridmaps/mapgrid"
	"gonum.org/v1/gonum/stat"
)

// Summary returns a one-line description of the layer's set cells for log
// output and plot captions.
func Summary(l *mapgrid.Layer) string {
	w, h := l.CellCounts()
	_, vals := collectCells(l)
	if len(vals) == 0 {
		return fmt.Sprintf("%dx%d cells, none set", w, h)
	}
	mean := stat.Mean(vals, nil)
	sd := stat.StdDev(vals, nil)
	return fmt.Sprintf("%dx%d cells, %d set, mean=%.3f stddev=%.3f", w, h, len(vals), mean, sd)
}
