// Command plotcsvpng is plotcsv without gnuplot: series are rendered to a PNG
// image when the session ends. The gp command is not available.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lmika/plotcsv/plotcsv"
	"github.com/lmika/plotcsv/plotcsv/plotters"
	"github.com/lmika/plotcsv/plotcsv/repl"
)

func main() {
	flagOut := flag.String("o", "plot.png", "output image")
	flagTitle := flag.String("title", "", "plot title")
	flagWidth := flag.Float64("width", 6, "image width in inches")
	flagHeight := flag.Float64("height", 4, "image height in inches")
	flagHistory := flag.String("history", repl.DefaultHistoryFile(), "history file, empty to disable")
	flagPrompt := flag.String("prompt", "", "prompt label used while no CSV file is loaded")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: plotcsvpng [flags] [file.csv | script%s]\n", plotcsv.ScriptSuffix)
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(repl.Run(repl.Config{
		Args:        flag.Args(),
		HistoryFile: *flagHistory,
		PromptLabel: *flagPrompt,
		Open: func() (plotcsv.Plotter, error) {
			return plotters.PNG(*flagOut, plotters.PNGOptions{
				Title:  *flagTitle,
				Width:  *flagWidth,
				Height: *flagHeight,
			}), nil
		},
	}))
}
