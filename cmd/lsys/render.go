package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sameer/lsys/render"
)

func renderCmd(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	mf := addModelFlags(fs)
	cf := addCanvasFlags(fs)
	output := fs.String("out", "", "Output SVG file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys render [model.json] [options]

Expand an L-system and render it to an SVG document.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Koch curve to stdout
  lsys render --axiom F --rules "F=>F+F-F-F+F" --draw F --angle 90 --iterations 4

  # From a model file, to a 100mm square canvas
  lsys render model.json --width 100 --height 100 --unit mm --out out.svg
`)
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

	opts, err := canvasOptions(m, cf)
	if err != nil {
		return err
	}

	if *output == "" {
		return render.Render(sys, opts, os.Stdout)
	}
	if err := render.RenderFile(sys, opts, *output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", *output)
	return nil
}
