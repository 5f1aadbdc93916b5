package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sameer/lsys/tracelog"
	"github.com/sameer/lsys/turtle"
)

func traceCmd(args []string) error {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	mf := addModelFlags(fs)
	format := fs.String("format", "csv", "Output format: csv or jsonl")
	output := fs.String("out", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys trace [model.json] [options]

Dump the turtle stroke sequence for an L-system, before normalization.
Useful for debugging grammars and diffing renders.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := loadModel(fs, mf)
	if err != nil {
		return err
	}
	sys, err := m.System()
	if err != nil {
		return err
	}
	printWarnings(sys.Validate())

	strokes, err := turtle.Trace(sys.Expand(), sys.Draw, sys.Angle)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "csv":
		return tracelog.WriteCSV(w, strokes)
	case "jsonl":
		return tracelog.WriteJSONL(w, strokes)
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
}
