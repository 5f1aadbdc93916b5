package main

import (
	"flag"
	"fmt"
	"os"
)

func expandCmd(args []string) error {
	fs := flag.NewFlagSet("expand", flag.ExitOnError)
	mf := addModelFlags(fs)
	length := fs.Bool("length", false, "Print only the expanded string length")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys expand [model.json] [options]

Print the expanded string for an L-system.

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

	expanded := sys.Expand()
	if *length {
		fmt.Println(len(expanded))
		return nil
	}
	fmt.Println(expanded)
	return nil
}
