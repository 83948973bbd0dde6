package plotters

import (
	"fmt"

	"github.com/lmika/plotcsv/plotcsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var _ plotcsv.Plotter = (*PNGPlotter)(nil)

type PNGOptions struct {
	Title string

	// Width and Height of the image, in inches. Zero means 6x4.
	Width  float64
	Height float64
}

type series struct {
	title  string
	style  string
	values []float64
}

// PNGPlotter collects series and renders them to an image file with gonum.
// The image is written by Flush and again by Close.
type PNGPlotter struct {
	path   string
	opts   PNGOptions
	xLabel string
	yLabel string
	legend bool
	style  string
	series []series
}

func PNG(path string, opts PNGOptions) *PNGPlotter {
	if opts.Width <= 0 {
		opts.Width = 6
	}
	if opts.Height <= 0 {
		opts.Height = 4
	}
	return &PNGPlotter{
		path:   path,
		opts:   opts,
		legend: true,
		style:  plotcsv.StyleLines,
	}
}

func (p *PNGPlotter) SetAxisLabel(axis plotcsv.Axis, text string) error {
	switch axis {
	case plotcsv.XAxis:
		p.xLabel = text
	case plotcsv.YAxis:
		p.yLabel = text
	default:
		return fmt.Errorf("unknown axis: %v", axis)
	}
	return nil
}

func (p *PNGPlotter) SetStyle(style string) error {
	if err := plotcsv.CheckStyle(style); err != nil {
		return err
	}
	p.style = style
	return nil
}

func (p *PNGPlotter) SetLegend(on bool) error {
	p.legend = on
	return nil
}

func (p *PNGPlotter) PlotSeries(values []float64, title string) error {
	for i, s := range p.series {
		if s.title == title {
			p.series[i] = series{title: title, style: p.style, values: values}
			return nil
		}
	}
	p.series = append(p.series, series{title: title, style: p.style, values: values})
	return nil
}

func (p *PNGPlotter) RawCommand(text string) error {
	return fmt.Errorf("%w: %s", plotcsv.ErrUnsupported, text)
}

// Flush writes the image with the series plotted so far.
func (p *PNGPlotter) Flush() error {
	pl := plot.New()
	pl.Title.Text = p.opts.Title
	pl.X.Label.Text = p.xLabel
	pl.Y.Label.Text = p.yLabel

	for i, s := range p.series {
		xys := make(plotter.XYs, len(s.values))
		for j, v := range s.values {
			xys[j].X = float64(j)
			xys[j].Y = v
		}

		thumbs, err := p.addSeries(pl, i, s.style, xys)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.title, err)
		}
		if p.legend && s.title != "" {
			pl.Legend.Add(s.title, thumbs...)
		}
	}

	return pl.Save(vg.Length(p.opts.Width)*vg.Inch, vg.Length(p.opts.Height)*vg.Inch, p.path)
}

func (p *PNGPlotter) addSeries(pl *plot.Plot, i int, style string, xys plotter.XYs) ([]plot.Thumbnailer, error) {
	switch style {
	case plotcsv.StylePoints:
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		pl.Add(sc)
		return []plot.Thumbnailer{sc}, nil
	case plotcsv.StyleLinesPoints:
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		l.Color = plotutil.Color(i)
		pts.GlyphStyle.Color = plotutil.Color(i)
		pl.Add(l, pts)
		return []plot.Thumbnailer{l, pts}, nil
	}

	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.Color = plotutil.Color(i)
	pl.Add(l)
	return []plot.Thumbnailer{l}, nil
}

// Close writes the image, unless nothing was plotted.
func (p *PNGPlotter) Close() error {
	if len(p.series) == 0 {
		return nil
	}
	return p.Flush()
}
