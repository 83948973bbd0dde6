package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lmika/plotcsv/plotcsv"
	"github.com/lmika/plotcsv/plotcsv/plotters"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("csvplot: ")

	flagCol := flag.Int("col", 2, "zero-based column to plot")
	flagOut := flag.String("o", "plot.png", "output image")
	flagTitle := flag.String("title", "", "series title")
	flagXLabel := flag.String("xlabel", "Time (s)", "x axis label")
	flagYLabel := flag.String("ylabel", "Temperature (C)", "y axis label")
	flagLegend := flag.Bool("legend", false, "show the legend")
	flagWidth := flag.Float64("width", 6, "image width in inches")
	flagHeight := flag.Float64("height", 4, "image height in inches")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: csvplot [flags] file.csv")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	values, err := plotcsv.New().ReadColumn(flag.Arg(0), *flagCol)
	if err != nil {
		log.Fatal(err)
	}

	plt := plotters.PNG(*flagOut, plotters.PNGOptions{Width: *flagWidth, Height: *flagHeight})
	if err := render(plt, values, *flagTitle, *flagXLabel, *flagYLabel, *flagLegend); err != nil {
		log.Fatal(err)
	}
}

func render(plt plotcsv.Plotter, values []float64, title, xLabel, yLabel string, legend bool) (err error) {
	defer func() {
		if cerr := plt.Close(); err == nil {
			err = cerr
		}
	}()

	if err := plt.SetLegend(legend); err != nil {
		return err
	}
	if err := plt.SetAxisLabel(plotcsv.XAxis, xLabel); err != nil {
		return err
	}
	if err := plt.SetAxisLabel(plotcsv.YAxis, yLabel); err != nil {
		return err
	}
	if err := plt.SetStyle("lines"); err != nil {
		return err
	}
	return plt.PlotSeries(values, title)
}
