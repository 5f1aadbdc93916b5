package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		if err := renderCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "expand":
		if err := expandCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validateCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "trace":
		if err := traceCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "preset":
		if err := presetCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "gallery":
		if err := galleryCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("lsys version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lsys - L-system expansion and SVG rendering tool

Usage:
  lsys <command> [options]

Commands:
  render     Expand an L-system and render it to an SVG document
  expand     Print the expanded string for an L-system
  validate   Check an L-system for missing rules and unused draw symbols
  trace      Dump the turtle stroke sequence as CSV or JSONL
  preset     List built-in example L-systems or render one by name
  gallery    Manage a SQLite library of saved L-systems
  help       Show this help message
  version    Show version information

Examples:
  # Render the Koch curve from flags
  lsys render --axiom F --rules "F=>F+F-F-F+F" --draw F --angle 90 --iterations 4 \
    --width 100 --height 100 --unit mm --out koch.svg

  # Render from a JSON model file
  lsys render model.json --out out.svg

  # Render a built-in preset
  lsys preset plant --out plant.svg

  # Save a model and render it from the library
  lsys gallery save model.json
  lsys gallery render koch --out koch.svg

For command-specific help, run:
  lsys <command> --help`)
}
