package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/svg"
)

// modelFlags are the shared grammar-definition flags used by every command
// that consumes an L-system.
type modelFlags struct {
	axiom      *string
	rules      *string
	draw       *string
	angle      *float64
	iterations *int
}

func addModelFlags(fs *flag.FlagSet) *modelFlags {
	return &modelFlags{
		axiom:      fs.String("axiom", "", "Initial string"),
		rules:      fs.String("rules", "", `Comma-separated replacement rules (i.e. "F=>F+F,G=>GG")`),
		draw:       fs.String("draw", "", "Symbols that draw a stroke when encountered"),
		angle:      fs.Float64("angle", 90, "Turn angle in degrees"),
		iterations: fs.Int("iterations", 0, "Number of times the rules will run"),
	}
}

// loadModel resolves the model either from a JSON file argument or from the
// grammar flags. Flags and a file argument are mutually exclusive.
func loadModel(fs *flag.FlagSet, mf *modelFlags) (*parser.Model, error) {
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("at most one model file may be given")
	}
	if fs.NArg() == 1 {
		if *mf.axiom != "" || *mf.rules != "" {
			return nil, fmt.Errorf("give either a model file or --axiom/--rules flags, not both")
		}
		return parser.ReadFile(fs.Arg(0))
	}
	if *mf.axiom == "" {
		fs.Usage()
		return nil, fmt.Errorf("model file or --axiom required")
	}

	var ruleList []string
	if *mf.rules != "" {
		for _, r := range strings.Split(*mf.rules, ",") {
			ruleList = append(ruleList, strings.TrimSpace(r))
		}
	}
	rules, err := parser.ParseRules(ruleList)
	if err != nil {
		return nil, err
	}
	ruleDoc := make(map[string]string, len(rules))
	for head, replacement := range rules {
		ruleDoc[string(head)] = replacement
	}

	return &parser.Model{
		Axiom:      *mf.axiom,
		Rules:      ruleDoc,
		Draw:       *mf.draw,
		Angle:      *mf.angle,
		Iterations: *mf.iterations,
	}, nil
}

// canvasFlags are the shared output-canvas flags.
type canvasFlags struct {
	width  *float64
	height *float64
	unit   *string
}

func addCanvasFlags(fs *flag.FlagSet) *canvasFlags {
	return &canvasFlags{
		width:  fs.Float64("width", 0, "Canvas width (default: model canvas or 100)"),
		height: fs.Float64("height", 0, "Canvas height (default: model canvas or 100)"),
		unit:   fs.String("unit", "", "Canvas unit: none, em, ex, px, in, cm, mm, pt, pc, percent"),
	}
}

// canvasOptions resolves the canvas from the model document, with flags
// taking precedence.
func canvasOptions(m *parser.Model, cf *canvasFlags) (svg.Options, error) {
	opts, err := m.CanvasOptions()
	if err != nil {
		return svg.Options{}, err
	}
	if *cf.width != 0 {
		opts.Width = *cf.width
	}
	if *cf.height != 0 {
		opts.Height = *cf.height
	}
	if *cf.unit != "" {
		unit, err := svg.ParseUnit(*cf.unit)
		if err != nil {
			return svg.Options{}, err
		}
		opts.Unit = unit
	}
	if err := opts.Validate(); err != nil {
		return svg.Options{}, err
	}
	return opts, nil
}

// printWarnings reports grammar validation warnings on stderr without
// blocking the command.
func printWarnings(warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
}
