package heatmap

import (
	"fmt"
	"os"

	"github.com/banshee-data/gridmaps/mapgrid"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// viridisColors is the in-range colour ramp for the HTML visual map.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// HTML writes an interactive scatter view of the layer's set cells to
// path. Each point sits at its cell's world position and is coloured by
// value through the visual map.
func HTML(l *mapgrid.Layer, path, title string) error {
	pos, vals := collectCells(l)

	data := make([]opts.ScatterData, 0, len(vals))
	for i, p := range pos {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y, vals[i]}})
	}

	minV, maxV, ok := l.MinMax()
	if !ok {
		minV, maxV = 0, 1
	}

	// symmetric axis range around the centre, padded so edge cells stay
	// visible
	ext := l.ExtentSize()
	c := l.Center()
	padX := ext.Width/2*1.05 + l.Resolution()
	padY := ext.Height/2*1.05 + l.Resolution()

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("set cells=%d resolution=%.3fm centre=(%.2f, %.2f)", len(data), l.Resolution(), c.X, c.Y),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: c.X - padX, Max: c.X + padX, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: c.Y - padY, Max: c.Y + padY, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minV),
			Max:        float32(maxV),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	scatter.AddSeries("cells", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	return writeFile(path, func(f *os.File) error {
		return scatter.Render(f)
	})
}
