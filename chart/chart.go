package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"qbtime/timesheet"
)

// Options controls the rendered chart geometry.
type Options struct {
	WidthInches  float64
	HeightInches float64
}

// SavePNG renders the summary as a bar chart and writes it to path. Bars
// appear in summary order (descending days) with project names as rotated
// x-axis labels.
func SavePNG(path string, summary timesheet.Summary, opts Options) error {
	p, err := build(summary)
	if err != nil {
		return err
	}

	width := vg.Length(opts.WidthInches) * vg.Inch
	height := vg.Length(opts.HeightInches) * vg.Inch
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func build(summary timesheet.Summary) (*plot.Plot, error) {
	values := make(plotter.Values, len(summary))
	names := make([]string, len(summary))
	for i, entry := range summary {
		values[i] = entry.Days
		names[i] = entry.Project
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0

	p := plot.New()
	p.Add(bars)
	p.NominalX(names...)
	p.X.Label.Text = "Project"
	p.Y.Label.Text = "Days booked"
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
