package turtle

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/sameer/lsys/grammar"
)

var drawF = map[rune]bool{'F': true}

func TestRadians(t *testing.T) {
	if got := Radians(180); got.Cmp(Pi()) != 0 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	halfPi := new(big.Rat).Quo(Pi(), big.NewRat(2, 1))
	if got := Radians(90); got.Cmp(halfPi) != 0 {
		t.Errorf("Radians(90) = %v, want pi/2", got)
	}
	if got := Radians(math.NaN()); got != nil {
		t.Errorf("Radians(NaN) = %v, want nil", got)
	}
}

func TestTraceStrokeCount(t *testing.T) {
	strokes, err := Trace("F+F-F", drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if len(strokes) != 3 {
		t.Fatalf("expected 3 strokes, got %d", len(strokes))
	}
	for i, s := range strokes {
		if s.Move {
			t.Errorf("stroke %d should be a draw, not a move", i)
		}
	}
}

func TestTraceIgnoresInertSymbols(t *testing.T) {
	strokes, err := Trace("XYFZ", drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if len(strokes) != 1 {
		t.Errorf("inert symbols must not draw, got %d strokes", len(strokes))
	}
}

func TestTraceInitialHeadingUp(t *testing.T) {
	strokes, err := Trace("F", drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	x, _ := strokes[0].X.Float64()
	y, _ := strokes[0].Y.Float64()
	if math.Abs(x) > 1e-9 || math.Abs(y+1) > 1e-9 {
		t.Errorf("first step should move up one unit, got (%v, %v)", x, y)
	}
}

func TestTraceReverseHeading(t *testing.T) {
	strokes, err := Trace("F|F", drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	// The second step retraces the first, so the turtle ends near the origin.
	x, _ := strokes[1].X.Float64()
	y, _ := strokes[1].Y.Float64()
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("reversed heading should return to the origin, got (%v, %v)", x, y)
	}
}

func TestTraceExactAccumulation(t *testing.T) {
	// Two steps along the same heading land exactly twice as far as one:
	// both steps add the identical rational delta.
	strokes, err := Trace("FF", drawF, Radians(25))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	two := big.NewRat(2, 1)
	wantX := new(big.Rat).Mul(strokes[0].X, two)
	wantY := new(big.Rat).Mul(strokes[0].Y, two)
	if strokes[1].X.Cmp(wantX) != 0 || strokes[1].Y.Cmp(wantY) != 0 {
		t.Error("second stroke is not exactly twice the first step")
	}
}

func TestTracePushPop(t *testing.T) {
	strokes, err := Trace("F[+F]F", drawF, Radians(25))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if len(strokes) != 4 {
		t.Fatalf("expected 4 strokes, got %d", len(strokes))
	}
	if !strokes[2].Move {
		t.Error("stroke after ']' must be a move")
	}
	// The pop restores the position reached by the first stroke.
	if strokes[2].X.Cmp(strokes[0].X) != 0 || strokes[2].Y.Cmp(strokes[0].Y) != 0 {
		t.Error("pop must restore the saved position exactly")
	}
}

func TestTraceUnbalancedPop(t *testing.T) {
	_, err := Trace("F]", drawF, Radians(90))
	if !errors.Is(err, ErrUnbalancedBrackets) {
		t.Errorf("expected ErrUnbalancedBrackets, got %v", err)
	}
}

func TestTraceUnmatchedPushIsAllowed(t *testing.T) {
	// An unclosed '[' leaves saved state behind but is not an error.
	strokes, err := Trace("[F", drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if len(strokes) != 1 {
		t.Errorf("expected 1 stroke, got %d", len(strokes))
	}
}

func TestTraceDeepNesting(t *testing.T) {
	// The save stack is heap-allocated, so data-dependent nesting depth
	// must not be limited by the call stack.
	expanded := grammar.Expand("X", map[rune]string{'X': "F-[[X]+X]+F[+FX]-X", 'F': "FF"}, 5)
	strokes, err := Trace(expanded, drawF, Radians(25))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	moves := 0
	for _, s := range strokes {
		if s.Move {
			moves++
		}
	}
	if moves == 0 {
		t.Error("branching grammar should produce move strokes")
	}
}

func TestTraceDeterministic(t *testing.T) {
	expanded := grammar.Expand("F", map[rune]string{'F': "F+F-F-F+F"}, 3)
	first, err := Trace(expanded, drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	second, err := Trace(expanded, drawF, Radians(90))
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("stroke counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].X.Cmp(second[i].X) != 0 || first[i].Y.Cmp(second[i].Y) != 0 || first[i].Move != second[i].Move {
			t.Fatalf("stroke %d differs between runs", i)
		}
	}
}
