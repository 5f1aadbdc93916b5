// Package geom computes stroke bounding boxes and maps strokes into the
// canonical unit square used by the SVG serializer.
package geom

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/sameer/lsys/turtle"
)

// ErrNoStrokes is returned when a bounding box is requested for an empty
// stroke sequence.
var ErrNoStrokes = errors.New("no strokes: bounding box is undefined")

// Box is an exact axis-aligned bounding box.
type Box struct {
	MinX, MinY *big.Rat
	MaxX, MaxY *big.Rat
}

// RangeX returns MaxX - MinX.
func (b Box) RangeX() *big.Rat {
	return new(big.Rat).Sub(b.MaxX, b.MinX)
}

// RangeY returns MaxY - MinY.
func (b Box) RangeY() *big.Rat {
	return new(big.Rat).Sub(b.MaxY, b.MinY)
}

// Bounds computes the bounding box over all stroke positions.
func Bounds(strokes []turtle.Stroke) (Box, error) {
	if len(strokes) == 0 {
		return Box{}, ErrNoStrokes
	}
	first := strokes[0]
	box := Box{
		MinX: new(big.Rat).Set(first.X),
		MinY: new(big.Rat).Set(first.Y),
		MaxX: new(big.Rat).Set(first.X),
		MaxY: new(big.Rat).Set(first.Y),
	}
	for _, s := range strokes[1:] {
		if s.X.Cmp(box.MinX) < 0 {
			box.MinX.Set(s.X)
		}
		if s.X.Cmp(box.MaxX) > 0 {
			box.MaxX.Set(s.X)
		}
		if s.Y.Cmp(box.MinY) < 0 {
			box.MinY.Set(s.Y)
		}
		if s.Y.Cmp(box.MaxY) > 0 {
			box.MaxY.Set(s.Y)
		}
	}
	return box, nil
}

var half = big.NewRat(1, 2)

// Normalize maps every stroke position into the unit square, preserving
// aspect ratio inside a width x height canvas.
//
// Both axes scale by the same factor, so the normalized drawing spans [0,1]
// on each axis; the axis whose canvas dimension exceeds min(width, height)
// additionally receives a centering offset of (dim-m)/m/2 so the drawing
// sits in the middle of the non-dominant direction. A zero-range axis
// (perfectly horizontal or vertical drawing) is centered at 1/2 instead of
// dividing by zero. The input slice is left untouched.
func Normalize(strokes []turtle.Stroke, width, height float64) ([]turtle.Stroke, error) {
	box, err := Bounds(strokes)
	if err != nil {
		return nil, err
	}

	m := math.Min(width, height)
	offsetX, err := centerOffset(width, m)
	if err != nil {
		return nil, err
	}
	offsetY, err := centerOffset(height, m)
	if err != nil {
		return nil, err
	}

	rangeX := box.RangeX()
	rangeY := box.RangeY()

	normalized := make([]turtle.Stroke, len(strokes))
	for i, s := range strokes {
		normalized[i] = turtle.Stroke{
			Point: turtle.Point{
				X: normalizeAxis(s.X, box.MinX, rangeX, offsetX),
				Y: normalizeAxis(s.Y, box.MinY, rangeY, offsetY),
			},
			Move: s.Move,
		}
	}
	return normalized, nil
}

// centerOffset returns (dim-m)/m/2 as an exact rational. The division
// happens in float64 first, matching how the canvas dimensions arrive, and
// the result is lifted exactly.
func centerOffset(dim, m float64) (*big.Rat, error) {
	offset := new(big.Rat).SetFloat64((dim - m) / m / 2)
	if offset == nil {
		return nil, fmt.Errorf("canvas dimensions %v x %v yield no finite offset", dim, m)
	}
	return offset, nil
}

func normalizeAxis(v, min, rng, offset *big.Rat) *big.Rat {
	out := new(big.Rat)
	if rng.Sign() == 0 {
		out.Set(half)
	} else {
		out.Sub(v, min)
		out.Quo(out, rng)
	}
	return out.Add(out, offset)
}
