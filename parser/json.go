package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sameer/lsys/grammar"
	"github.com/sameer/lsys/svg"
	"github.com/sameer/lsys/turtle"
)

// Model is the JSON document form of an L-system plus optional canvas:
//
//	{
//	  "name": "koch",
//	  "axiom": "F",
//	  "rules": {"F": "F+F-F-F+F"},
//	  "draw": "F",
//	  "angle": 90,
//	  "iterations": 4,
//	  "canvas": {"width": 100, "height": 100, "unit": "mm"}
//	}
//
// Rule keys are single symbols; "draw" lists the drawable symbols as one
// string; "angle" is the turn angle in degrees.
type Model struct {
	Name       string            `json:"name,omitempty"`
	Axiom      string            `json:"axiom"`
	Rules      map[string]string `json:"rules"`
	Draw       string            `json:"draw"`
	Angle      float64           `json:"angle"`
	Iterations int               `json:"iterations"`
	Canvas     *CanvasModel      `json:"canvas,omitempty"`
}

// CanvasModel is the JSON form of the output canvas options.
type CanvasModel struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit,omitempty"`
}

// FromJSON parses a model document.
func FromJSON(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := m.check(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ToJSON serializes a model document with stable indentation.
func ToJSON(m *Model) ([]byte, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, "", "  ")
}

// ReadFile loads a model document from a file.
func ReadFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return FromJSON(data)
}

// WriteFile saves a model document to a file.
func WriteFile(m *Model, filename string) error {
	data, err := ToJSON(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}

func (m *Model) check() error {
	if m.Axiom == "" {
		return fmt.Errorf("model field \"axiom\" must not be empty")
	}
	if m.Iterations < 0 {
		return fmt.Errorf("model field \"iterations\" must be non-negative, got %d", m.Iterations)
	}
	for head := range m.Rules {
		if len([]rune(head)) != 1 {
			return fmt.Errorf("model field \"rules\": key %q must be a single symbol", head)
		}
		if grammar.Reserved([]rune(head)[0]) {
			return fmt.Errorf("model field \"rules\": %q is a reserved symbol and cannot be remapped", head)
		}
	}
	return nil
}

// System builds the grammar.System described by the model, converting the
// degree angle to exact radians.
func (m *Model) System() (*grammar.System, error) {
	if err := m.check(); err != nil {
		return nil, err
	}
	angle := turtle.Radians(m.Angle)
	if angle == nil {
		return nil, fmt.Errorf("model field \"angle\" must be finite, got %v", m.Angle)
	}
	rules := make(map[rune]string, len(m.Rules))
	for head, replacement := range m.Rules {
		rules[[]rune(head)[0]] = replacement
	}
	return &grammar.System{
		Axiom:      m.Axiom,
		Rules:      rules,
		Draw:       grammar.DrawSet(m.Draw),
		Angle:      angle,
		Iterations: m.Iterations,
	}, nil
}

// CanvasOptions builds the svg.Options described by the model's canvas
// section. A model without a canvas section gets a 100x100 unit-less
// default.
func (m *Model) CanvasOptions() (svg.Options, error) {
	if m.Canvas == nil {
		return svg.Options{Width: 100, Height: 100, Unit: svg.UnitNone}, nil
	}
	unit, err := svg.ParseUnit(m.Canvas.Unit)
	if err != nil {
		return svg.Options{}, fmt.Errorf("model field \"canvas.unit\": %w", err)
	}
	opts := svg.Options{Width: m.Canvas.Width, Height: m.Canvas.Height, Unit: unit}
	if err := opts.Validate(); err != nil {
		return svg.Options{}, fmt.Errorf("model field \"canvas\": %w", err)
	}
	return opts, nil
}
