// Package turtle interprets an expanded L-system string as turtle graphics,
// producing an ordered stroke sequence.
//
// Positions and headings accumulate in arbitrary-precision rationals so a
// render is byte-reproducible across platforms. The only floating-point
// excursion is the single cos/sin evaluation per drawn step; its result is
// lifted back into a rational before it is added to the position, so
// rounding error never compounds across steps.
package turtle

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/sameer/lsys/grammar"
)

// Interpreter errors.
var (
	// ErrUnbalancedBrackets is returned when a ']' occurs with no matching '['.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets: ']' with no matching '['")
	// ErrNotFinite is returned when a trigonometric result has no rational
	// representation (NaN or infinity).
	ErrNotFinite = errors.New("trigonometric result is not finite")
)

// Point is an exact 2D coordinate. +x points right, +y points down.
type Point struct {
	X, Y *big.Rat
}

// Stroke is one entry of the interpreter output. Move marks a position
// reached by restoring saved state: a new disconnected subpath starts there.
type Stroke struct {
	Point
	Move bool
}

// pi to 28 decimal digits, the fixed constant all exact angle arithmetic
// is built from.
var pi = mustRat("3.1415926535897932384626433833")

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic(fmt.Sprintf("turtle: invalid rational constant %q", s))
	}
	return r
}

// Pi returns a copy of the exact pi constant.
func Pi() *big.Rat {
	return new(big.Rat).Set(pi)
}

// Radians converts an angle in degrees to the exact radian value used by
// the interpreter. The degree value itself is lifted exactly from its
// float64 representation.
func Radians(degrees float64) *big.Rat {
	deg := new(big.Rat).SetFloat64(degrees)
	if deg == nil {
		return nil
	}
	deg.Mul(deg, pi)
	return deg.Quo(deg, big.NewRat(180, 1))
}

// state is one saved turtle snapshot.
type state struct {
	x, y    *big.Rat
	heading *big.Rat
}

// Trace walks the expanded string once and returns the stroke sequence.
//
// Symbols in draw advance the turtle one unit along its heading and record
// a stroke; '+', '-' and '|' adjust the heading by angle; '[' and ']' save
// and restore (position, heading) on an explicit stack. Any other symbol is
// ignored. The heading starts pointing up (-pi/2).
func Trace(expanded string, draw map[rune]bool, angle *big.Rat) ([]Stroke, error) {
	x := new(big.Rat)
	y := new(big.Rat)
	heading := new(big.Rat).Quo(pi, big.NewRat(-2, 1))

	var strokes []Stroke
	var stack []state

	for _, r := range expanded {
		switch r {
		case grammar.TurnLeft:
			heading.Add(heading, angle)
		case grammar.TurnRight:
			heading.Sub(heading, angle)
		case grammar.Reverse:
			heading.Neg(heading)
		case grammar.Push:
			stack = append(stack, state{
				x:       new(big.Rat).Set(x),
				y:       new(big.Rat).Set(y),
				heading: new(big.Rat).Set(heading),
			})
		case grammar.Pop:
			if len(stack) == 0 {
				return nil, ErrUnbalancedBrackets
			}
			saved := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x.Set(saved.x)
			y.Set(saved.y)
			heading.Set(saved.heading)
			strokes = append(strokes, Stroke{
				Point: Point{X: new(big.Rat).Set(x), Y: new(big.Rat).Set(y)},
				Move:  true,
			})
		default:
			if !draw[r] {
				continue
			}
			h, _ := heading.Float64()
			dx := new(big.Rat).SetFloat64(math.Cos(h))
			dy := new(big.Rat).SetFloat64(math.Sin(h))
			if dx == nil || dy == nil {
				return nil, fmt.Errorf("%w: heading %v", ErrNotFinite, h)
			}
			x.Add(x, dx)
			y.Add(y, dy)
			strokes = append(strokes, Stroke{
				Point: Point{X: new(big.Rat).Set(x), Y: new(big.Rat).Set(y)},
			})
		}
	}

	return strokes, nil
}
