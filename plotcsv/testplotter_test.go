package plotcsv_test

import (
	"testing/fstest"

	"github.com/lmika/plotcsv/plotcsv"
)

var testFS = fstest.MapFS{
	"data/sample.csv": &fstest.MapFile{
		Data: []byte("1,10.5,20\n2,11.0,21\n"),
	},
	"short.csv": &fstest.MapFile{
		Data: []byte("1,2,3\n4,5\n"),
	},
	"empty.csv": &fstest.MapFile{
		Data: []byte(""),
	},
}

type plottedSeries struct {
	values []float64
	title  string
	style  string
}

// recordingPlotter records what is sent to it.
type recordingPlotter struct {
	calls  []string
	labels map[plotcsv.Axis]string
	style  string
	legend *bool
	series []plottedSeries
	raw    []string
	closed int
}

func newRecordingPlotter() *recordingPlotter {
	return &recordingPlotter{labels: make(map[plotcsv.Axis]string)}
}

func (r *recordingPlotter) SetAxisLabel(axis plotcsv.Axis, text string) error {
	r.calls = append(r.calls, axis.String()+"label")
	r.labels[axis] = text
	return nil
}

func (r *recordingPlotter) SetStyle(style string) error {
	r.calls = append(r.calls, "style")
	r.style = style
	return nil
}

func (r *recordingPlotter) SetLegend(on bool) error {
	r.calls = append(r.calls, "legend")
	r.legend = &on
	return nil
}

func (r *recordingPlotter) PlotSeries(values []float64, title string) error {
	r.calls = append(r.calls, "plot")
	r.series = append(r.series, plottedSeries{values: values, title: title, style: r.style})
	return nil
}

func (r *recordingPlotter) RawCommand(text string) error {
	r.calls = append(r.calls, "raw")
	r.raw = append(r.raw, text)
	return nil
}

func (r *recordingPlotter) Close() error {
	r.closed++
	return nil
}

type recordingHistory struct {
	lines []string
}

func (h *recordingHistory) SaveHistory(line string) error {
	h.lines = append(h.lines, line)
	return nil
}
