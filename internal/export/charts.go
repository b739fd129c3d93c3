package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ANIKETSHETTY47/global-energy-services/internal/domain"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

type series struct {
	name string
	xys  plotter.XYs
}

func lineChart(path, title string, lines []series) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Useful energy (EJ)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range lines {
		if len(s.xys) == 0 {
			continue
		}
		l, err := plotter.NewLine(s.xys)
		if err != nil {
			return fmt.Errorf("failed to build %s line: %w", s.name, err)
		}
		l.Color = plotutil.Color(i)
		l.Dashes = plotutil.Dashes(i / 7)
		l.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(s.name, l)
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}

// HistoryChart plots total, fossil and clean useful energy over the historical series.
func HistoryChart(path string, ts domain.Timeseries) error {
	total := make(plotter.XYs, len(ts.Data))
	fossil := make(plotter.XYs, len(ts.Data))
	clean := make(plotter.XYs, len(ts.Data))
	for i, r := range ts.Data {
		x := float64(r.Year)
		total[i] = plotter.XY{X: x, Y: r.TotalUsefulEJ}
		fossil[i] = plotter.XY{X: x, Y: r.FossilUsefulEJ}
		clean[i] = plotter.XY{X: x, Y: r.CleanUsefulEJ}
	}
	return lineChart(path, "Global useful energy", []series{
		{"Total", total}, {"Fossil", fossil}, {"Clean", clean},
	})
}

// ProjectionChart plots the total and fossil trajectory of every scenario.
func ProjectionChart(path, title string, proj domain.Projections) error {
	var lines []series
	for _, s := range proj.Scenarios {
		total := make(plotter.XYs, len(s.Data))
		fossil := make(plotter.XYs, len(s.Data))
		for i, p := range s.Data {
			total[i] = plotter.XY{X: float64(p.Year), Y: p.TotalUsefulEJ}
			fossil[i] = plotter.XY{X: float64(p.Year), Y: p.FossilUsefulEJ}
		}
		lines = append(lines, series{s.Name + " total", total}, series{s.Name + " fossil", fossil})
	}
	return lineChart(path, title, lines)
}
