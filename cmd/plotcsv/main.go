// Command plotcsv plots CSV columns with gnuplot. gnuplot must be on the
// PATH: the glot package refuses to load without it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Arafatk/glot"
	"github.com/lmika/plotcsv/plotcsv"
	"github.com/lmika/plotcsv/plotcsv/plotters/gnuplot"
	"github.com/lmika/plotcsv/plotcsv/repl"
)

var _ gnuplot.Driver = (*glot.Plot)(nil)

func main() {
	flagHistory := flag.String("history", repl.DefaultHistoryFile(), "history file, empty to disable")
	flagPersist := flag.Bool("persist", false, "keep the gnuplot window open on exit")
	flagDebug := flag.Bool("debug", false, "echo commands sent to gnuplot")
	flagPrompt := flag.String("prompt", "", "prompt label used while no CSV file is loaded")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: plotcsv [flags] [file.csv | script%s]\n", plotcsv.ScriptSuffix)
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(repl.Run(repl.Config{
		Args:        flag.Args(),
		HistoryFile: *flagHistory,
		PromptLabel: *flagPrompt,
		Open: func() (plotcsv.Plotter, error) {
			p, err := glot.NewPlot(2, *flagPersist, *flagDebug)
			if err != nil {
				return nil, fmt.Errorf("starting gnuplot: %w", err)
			}
			return gnuplot.New(p), nil
		},
	}))
}
