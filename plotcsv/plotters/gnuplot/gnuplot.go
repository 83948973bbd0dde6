// Package gnuplot sends plots to a gnuplot process.
//
// The process itself is driven through a Driver, which *glot.Plot satisfies.
// This package does not import glot: glot panics at init when gnuplot is not
// on the PATH, so only binaries that really need gnuplot should link it.
package gnuplot

import (
	"fmt"
	"strings"

	"github.com/lmika/plotcsv/plotcsv"
)

// Driver is the part of *glot.Plot used by Plotter.
type Driver interface {
	AddPointGroup(name string, style string, data interface{}) error
	ResetPlot() error
	Cmd(format string, a ...interface{}) error
	Close() error
}

var _ plotcsv.Plotter = (*Plotter)(nil)

var glotStyles = map[string]string{
	plotcsv.StyleLines:       "lines",
	plotcsv.StylePoints:      "points",
	plotcsv.StyleLinesPoints: "linepoints",
}

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type series struct {
	title  string
	style  string
	values []float64
}

type Plotter struct {
	driver Driver
	style  string
	series []series
}

func New(driver Driver) *Plotter {
	return &Plotter{
		driver: driver,
		style:  glotStyles[plotcsv.StyleLines],
	}
}

func (g *Plotter) SetAxisLabel(axis plotcsv.Axis, text string) error {
	switch axis {
	case plotcsv.XAxis, plotcsv.YAxis:
		return g.driver.Cmd("set %slabel %s", axis, quote(text))
	}
	return fmt.Errorf("unknown axis: %v", axis)
}

func (g *Plotter) SetStyle(style string) error {
	if err := plotcsv.CheckStyle(style); err != nil {
		return err
	}
	g.style = glotStyles[style]
	return nil
}

func (g *Plotter) SetLegend(on bool) error {
	if on {
		return g.driver.Cmd("set key on")
	}
	return g.driver.Cmd("set key off")
}

// PlotSeries adds values as a point group. Plotting a title a second time
// replaces the earlier series and redraws the others.
func (g *Plotter) PlotSeries(values []float64, title string) error {
	s := series{title: title, style: g.style, values: values}

	for i := range g.series {
		if g.series[i].title == title {
			g.series[i] = s
			return g.redraw()
		}
	}

	if err := g.add(s); err != nil {
		return err
	}
	g.series = append(g.series, s)
	return nil
}

func (g *Plotter) RawCommand(text string) error {
	return g.driver.Cmd("%s", text)
}

func (g *Plotter) Close() error {
	return g.driver.Close()
}

func (g *Plotter) redraw() error {
	if err := g.driver.ResetPlot(); err != nil {
		return err
	}
	for _, s := range g.series {
		if err := g.add(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Plotter) add(s series) error {
	xs := make([]float64, len(s.values))
	for i := range xs {
		xs[i] = float64(i)
	}
	return g.driver.AddPointGroup(s.title, s.style, [][]float64{xs, s.values})
}

// quote returns text as a gnuplot double quoted string.
func quote(text string) string {
	return `"` + quoter.Replace(text) + `"`
}
