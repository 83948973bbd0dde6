package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/lmika/gopkgs/fp/slices"
	"github.com/lmika/plotcsv/plotcsv"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("csvcol: ")

	flagCol := flag.Int("col", 2, "zero-based column to print")
	flagSep := flag.String("sep", " - ", "separator printed between values")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: csvcol [flags] file.csv")
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

	fmt.Println(strings.Join(slices.Map(values, func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}), *flagSep))
}
