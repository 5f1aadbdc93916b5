package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/presets"
	"github.com/sameer/lsys/render"
)

func presetCmd(args []string) error {
	fs := flag.NewFlagSet("preset", flag.ExitOnError)
	cf := addCanvasFlags(fs)
	output := fs.String("out", "", "Output SVG file (default: stdout)")
	asJSON := fs.Bool("json", false, "Print the preset as a JSON model instead of rendering")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys preset [name] [options]

Without a name, list the built-in example L-systems. With a name, render
the preset (or print its JSON model with --json).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		for _, name := range presets.List() {
			p := presets.Registry[name]
			fmt.Printf("%-12s %s\n", name, p.Description)
		}
		return nil
	}

	p, err := presets.Get(fs.Arg(0))
	if err != nil {
		return err
	}
	m, err := p.Model()
	if err != nil {
		return err
	}

	if *asJSON {
		doc, err := parser.ToJSON(m)
		if err != nil {
			return err
		}
		fmt.Println(string(doc))
		return nil
	}

	sys, err := p.System()
	if err != nil {
		return err
	}
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
