package main

import (
	"flag"
	"fmt"
	"os"
)

func validateCmd(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	mf := addModelFlags(fs)
	strict := fs.Bool("strict", false, "Fail when any warning is produced")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: lsys validate [model.json] [options]

Check an L-system for missing rules and unused draw symbols. Warnings never
stop a render; --strict turns them into an error for CI-style use.

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

	warnings := sys.Validate()
	printWarnings(warnings)
	if len(warnings) == 0 {
		fmt.Println("OK")
		return nil
	}
	if *strict {
		return fmt.Errorf("%d warning(s)", len(warnings))
	}
	return nil
}
