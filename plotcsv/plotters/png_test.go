package plotters_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lmika/plotcsv/plotcsv"
	"github.com/lmika/plotcsv/plotcsv/plotters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG_Close(t *testing.T) {
	tests := []struct {
		desc  string
		style string
	}{
		{desc: "lines", style: "lines"},
		{desc: "points", style: "points"},
		{desc: "lines and points", style: "linespoints"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plot.png")
			plt := plotters.PNG(path, plotters.PNGOptions{Title: "Heatsink"})

			require.NoError(t, plt.SetAxisLabel(plotcsv.XAxis, "Time (s)"))
			require.NoError(t, plt.SetAxisLabel(plotcsv.YAxis, "Temperature (C)"))
			require.NoError(t, plt.SetStyle(tt.style))
			require.NoError(t, plt.PlotSeries([]float64{20, 21.5, 23, 22}, "CPU"))
			require.NoError(t, plt.PlotSeries([]float64{18, 18.5, 19}, "Case"))
			assert.NoError(t, plt.Close())

			info, err := os.Stat(path)
			assert.NoError(t, err)
			assert.NotZero(t, info.Size())
		})
	}

	t.Run("nothing plotted writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot.png")
		plt := plotters.PNG(path, plotters.PNGOptions{})

		assert.NoError(t, plt.Close())

		_, err := os.Stat(path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("legend off", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plot.png")
		plt := plotters.PNG(path, plotters.PNGOptions{Width: 3, Height: 2})

		require.NoError(t, plt.SetLegend(false))
		require.NoError(t, plt.PlotSeries([]float64{1, 2, 3}, "CPU"))
		require.NoError(t, plt.PlotSeries([]float64{3, 2, 1}, "CPU"))
		assert.NoError(t, plt.Flush())

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestPNG_Unsupported(t *testing.T) {
	plt := plotters.PNG(filepath.Join(t.TempDir(), "plot.png"), plotters.PNGOptions{})

	assert.True(t, errors.Is(plt.RawCommand("set grid"), plotcsv.ErrUnsupported))
	assert.True(t, errors.Is(plt.SetStyle("impulses"), plotcsv.ErrUnsupported))
}

func TestPNG_WithSession(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "temps.csv")
	pngPath := filepath.Join(dir, "temps.png")
	require.NoError(t, os.WriteFile(csvPath, []byte("0,20.5\n1,21\n2,22.25\n"), 0o644))

	plt := plotters.PNG(pngPath, plotters.PNGOptions{})
	s := plotcsv.New(plotcsv.WithPlotter(plt), plotcsv.WithQuiet(true))

	for _, line := range []string{"load " + csvPath, "xlabel Time (s)", "plot 1 CPU"} {
		_, err := s.Dispatch(context.Background(), line)
		require.NoError(t, err, line)
	}

	_, err := s.Dispatch(context.Background(), "gp set grid")
	assert.True(t, errors.Is(err, plotcsv.ErrUnsupported))

	assert.NoError(t, plt.Close())
	_, err = os.Stat(pngPath)
	assert.NoError(t, err)
}
