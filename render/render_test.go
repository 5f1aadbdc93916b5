package render

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sameer/lsys/grammar"
	"github.com/sameer/lsys/parser"
	"github.com/sameer/lsys/svg"
	"github.com/sameer/lsys/turtle"
)

func system(t *testing.T, axiom string, rules []string, draw string, angleDeg float64, iterations int) *grammar.System {
	t.Helper()
	parsed, err := parser.ParseRules(rules)
	if err != nil {
		t.Fatalf("parse rules: %v", err)
	}
	return &grammar.System{
		Axiom:      axiom,
		Rules:      parsed,
		Draw:       grammar.DrawSet(draw),
		Angle:      turtle.Radians(angleDeg),
		Iterations: iterations,
	}
}

func koch(t *testing.T) *grammar.System {
	return system(t, "F", []string{"F=>F+F-F-F+F"}, "F", 90, 4)
}

var squareMm = svg.Options{Width: 100, Height: 100, Unit: svg.UnitMm}

// pathData extracts the d attribute from a rendered document.
func pathData(t *testing.T, doc string) string {
	t.Helper()
	_, after, found := strings.Cut(doc, `d="`)
	if !found {
		t.Fatalf("no path data in document:\n%s", doc)
	}
	data, _, found := strings.Cut(after, `"`)
	if !found {
		t.Fatal("unterminated d attribute")
	}
	return data
}

func TestKochScenario(t *testing.T) {
	sys := koch(t)
	if got := strings.Count(sys.Expand(), "F"); got != 625 {
		t.Errorf("expanded Koch string has %d drawable symbols, want 625", got)
	}

	doc, err := RenderString(sys, squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	data := pathData(t, doc)
	if !strings.HasPrefix(data, "M ") {
		t.Error("path data must start with a move command")
	}
	if strings.Count(data, "M ") != 1 {
		t.Error("Koch curve must be a single connected subpath")
	}
}

func TestArrowheadConnected(t *testing.T) {
	sys := system(t, "A", []string{"A=>B-A-B", "B=>A+B+A"}, "AB", 60, 7)
	doc, err := RenderString(sys, squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Count(pathData(t, doc), "M ") != 1 {
		t.Error("Sierpinski arrowhead must be a single connected subpath")
	}
}

func TestPlantHasMoveBreaks(t *testing.T) {
	sys := system(t, "X", []string{"X=>F-[[X]+X]+F[+FX]-X", "F=>FF"}, "F", 25, 5)
	doc, err := RenderString(sys, squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Count(pathData(t, doc), "M ") < 2 {
		t.Error("branching plant must contain disjoint subpaths")
	}
}

func TestCanvasAttributes(t *testing.T) {
	doc, err := RenderString(koch(t), squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(doc, `width="100mm" height="100mm" viewBox="0 0 100 100"`) {
		t.Error("root element must carry the literal canvas attributes")
	}
}

func TestNormalizedCoordinatesWithinCanvas(t *testing.T) {
	doc, err := RenderString(koch(t), squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// On a square canvas, every pre-transform coordinate lies in [0, 1].
	for _, cmd := range strings.Fields(pathData(t, doc)) {
		if cmd == "M" || cmd == "L" {
			continue
		}
		for _, coord := range strings.Split(cmd, ",") {
			v, err := strconv.ParseFloat(coord, 64)
			if err != nil {
				t.Fatalf("bad coordinate %q: %v", coord, err)
			}
			if v < 0 || v > 1 {
				t.Fatalf("coordinate %v outside the unit square", v)
			}
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	first, err := RenderString(koch(t), squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := RenderString(koch(t), squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Error("repeated renders must be byte-identical")
	}
}

func TestEmptyDrawing(t *testing.T) {
	sys := system(t, "X", []string{"X=>X+X"}, "F", 90, 3)
	_, err := RenderString(sys, squareMm)
	if !errors.Is(err, ErrEmptyDrawing) {
		t.Errorf("expected ErrEmptyDrawing, got %v", err)
	}
}

func TestUnbalancedBrackets(t *testing.T) {
	sys := system(t, "F]", nil, "F", 90, 0)
	_, err := RenderString(sys, squareMm)
	if !errors.Is(err, turtle.ErrUnbalancedBrackets) {
		t.Errorf("expected ErrUnbalancedBrackets, got %v", err)
	}
}

func TestInvalidCanvas(t *testing.T) {
	_, err := RenderString(koch(t), svg.Options{Width: 0, Height: 100})
	if err == nil {
		t.Error("expected an error for a zero-width canvas")
	}
}

func TestRenderFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "koch.svg")
	if err := RenderFile(koch(t), squareMm, filename); err != nil {
		t.Fatalf("render to file failed: %v", err)
	}
	written, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	direct, err := RenderString(koch(t), squareMm)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if string(written) != direct {
		t.Error("file output differs from direct output")
	}
}
