package plotcsv

import "fmt"

type Axis int

const (
	XAxis Axis = iota
	YAxis
)

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	}
	return "?"
}

// Series styles every backend understands.
const (
	StyleLines       = "lines"
	StylePoints      = "points"
	StyleLinesPoints = "linespoints"
)

// CheckStyle returns ErrUnsupported for anything but the common styles.
func CheckStyle(style string) error {
	switch style {
	case StyleLines, StylePoints, StyleLinesPoints:
		return nil
	}
	return fmt.Errorf("%w: style %q", ErrUnsupported, style)
}

// Plotter is a plotting backend. Backends are opened by their constructor
// and must be closed exactly once by whoever opened them.
type Plotter interface {
	SetAxisLabel(axis Axis, text string) error
	SetStyle(style string) error
	SetLegend(on bool) error

	// PlotSeries draws values against their index as a named series.
	PlotSeries(values []float64, title string) error

	// RawCommand passes text through to the backend unchanged.
	RawCommand(text string) error

	Close() error
}

// HistoryRecorder records lines in the line editor's history.
type HistoryRecorder interface {
	SaveHistory(line string) error
}

type discardPlotter struct{}

func (discardPlotter) SetAxisLabel(Axis, string) error    { return nil }
func (discardPlotter) SetStyle(string) error              { return nil }
func (discardPlotter) SetLegend(bool) error               { return nil }
func (discardPlotter) PlotSeries([]float64, string) error { return nil }
func (discardPlotter) RawCommand(string) error            { return nil }
func (discardPlotter) Close() error                       { return nil }
