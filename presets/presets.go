// Package presets provides a registry of well-known example L-systems.
// Front-ends use it to offer ready-made grammars without shipping their own
// tables.
package presets

import (
	"fmt"
	"sort"

	"github.com/sameer/lsys/grammar"
	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/turtle"
)

// Preset is a named, fully parameterized example L-system.
type Preset struct {
	Name        string
	Description string
	Axiom       string
	// Rules in textual "symbol=>replacement" form.
	Rules []string
	// Draw lists the drawable symbols as one string.
	Draw string
	// AngleDeg is the turn angle in degrees.
	AngleDeg float64
	// Iterations is the recommended generation count.
	Iterations int
}

// System builds a ready-to-render grammar.System from the preset.
func (p Preset) System() (*grammar.System, error) {
	rules, err := parser.ParseRules(p.Rules)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	angle := turtle.Radians(p.AngleDeg)
	if angle == nil {
		return nil, fmt.Errorf("preset %s: angle %v is not finite", p.Name, p.AngleDeg)
	}
	return &grammar.System{
		Axiom:      p.Axiom,
		Rules:      rules,
		Draw:       grammar.DrawSet(p.Draw),
		Angle:      angle,
		Iterations: p.Iterations,
	}, nil
}

// Model converts the preset to a parser.Model document.
func (p Preset) Model() (*parser.Model, error) {
	rules, err := parser.ParseRules(p.Rules)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	ruleDoc := make(map[string]string, len(rules))
	for head, replacement := range rules {
		ruleDoc[string(head)] = replacement
	}
	return &parser.Model{
		Name:       p.Name,
		Axiom:      p.Axiom,
		Rules:      ruleDoc,
		Draw:       p.Draw,
		Angle:      p.AngleDeg,
		Iterations: p.Iterations,
	}, nil
}

// Registry holds all built-in presets by name.
var Registry = map[string]Preset{
	"koch": {
		Name:        "koch",
		Description: "Koch curve",
		Axiom:       "F",
		Rules:       []string{"F=>F+F-F-F+F"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  4,
	},
	"sierpinski": {
		Name:        "sierpinski",
		Description: "Sierpinski triangle",
		Axiom:       "F-G-G",
		Rules:       []string{"F=>F-G+F+G-F", "G=>GG"},
		Draw:        "FG",
		AngleDeg:    120,
		Iterations:  6,
	},
	"arrowhead": {
		Name:        "arrowhead",
		Description: "Sierpinski arrowhead curve",
		Axiom:       "A",
		Rules:       []string{"A=>B-A-B", "B=>A+B+A"},
		Draw:        "AB",
		AngleDeg:    60,
		Iterations:  7,
	},
	"dragon": {
		Name:        "dragon",
		Description: "Dragon curve",
		Axiom:       "FX",
		Rules:       []string{"X=>X+YF+", "Y=>-FX-Y", "F=>F"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  12,
	},
	"plant": {
		Name:        "plant",
		Description: "Fractal plant with branching",
		Axiom:       "X",
		Rules:       []string{"X=>F-[[X]+X]+F[+FX]-X", "F=>FF"},
		Draw:        "F",
		AngleDeg:    25,
		Iterations:  5,
	},
	"moore": {
		Name:        "moore",
		Description: "Moore curve",
		Axiom:       "LFL+F+LFL",
		Rules:       []string{"L=>-RF+LFL+FR-", "R=>+LF-RFR-FL+", "F=>F"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  5,
	},
	"hilbert": {
		Name:        "hilbert",
		Description: "Hilbert curve",
		Axiom:       "A",
		Rules:       []string{"A=>-BF+AFA+FB-", "B=>+AF-BFB-FA+", "F=>F"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  6,
	},
	"carpet": {
		Name:        "carpet",
		Description: "Sierpinski carpet",
		Axiom:       "F+F+F+F",
		Rules:       []string{"F=>FF+F+F+F+FF"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  4,
	},
	"snowflake": {
		Name:        "snowflake",
		Description: "Koch snowflake",
		Axiom:       "F++F++F",
		Rules:       []string{"F=>F-F++F-F"},
		Draw:        "F",
		AngleDeg:    60,
		Iterations:  4,
	},
	"gosper": {
		Name:        "gosper",
		Description: "Gosper flowsnake",
		Axiom:       "XF",
		Rules:       []string{"X=>X+YF++YF-FX--FXFX-YF+", "Y=>-FX+YFYF++YF+FX--FX-Y", "F=>F"},
		Draw:        "F",
		AngleDeg:    60,
		Iterations:  5,
	},
	"kolam": {
		Name:        "kolam",
		Description: "Kolam pattern",
		Axiom:       "-D--D",
		Rules: []string{
			"A=>F++FFFF--F--FFFF++F++FFFF--F",
			"B=>F--FFFF++F++FFFF--F--FFFF++F",
			"C=>BFA--BFA",
			"D=>CFC--CFC",
			"F=>F",
		},
		Draw:       "F",
		AngleDeg:   45,
		Iterations: 7,
	},
	"crystal": {
		Name:        "crystal",
		Description: "Crystal growth",
		Axiom:       "F+F+F+F",
		Rules:       []string{"F=>FF+F++F+F"},
		Draw:        "F",
		AngleDeg:    90,
		Iterations:  4,
	},
}

// Get returns a preset by name.
func Get(name string) (Preset, error) {
	p, ok := Registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset: %s", name)
	}
	return p, nil
}

// List returns all preset names, sorted.
func List() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
