// Package svg serializes normalized stroke sequences as SVG documents.
//
// The output is byte-reproducible: coordinates are formatted from exact
// rationals with a fixed digit count, so re-encoding the same strokes with
// the same options always yields an identical document.
package svg

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sameer/lsys/turtle"
)

// ErrNoStrokes is returned when Encode is given an empty stroke sequence.
var ErrNoStrokes = errors.New("no strokes to serialize")

// coordDigits is the fixed number of decimal digits emitted per coordinate.
const coordDigits = 7

// Options describes the physical output canvas.
type Options struct {
	// Width and Height of the canvas, in Unit.
	Width, Height float64
	// Unit is the length unit suffix on the root element.
	Unit Unit
}

// Validate checks that the canvas dimensions are positive and finite.
func (o Options) Validate() error {
	for _, dim := range []float64{o.Width, o.Height} {
		if math.IsNaN(dim) || math.IsInf(dim, 0) || dim <= 0 {
			return fmt.Errorf("canvas dimensions must be positive and finite, got %v x %v", o.Width, o.Height)
		}
	}
	return nil
}

// Encode writes a complete SVG document for the normalized strokes.
//
// The document is a single path whose data alternates absolute move and
// line commands: the first stroke and every Move stroke become "M", all
// others "L". Path coordinates stay in unit-square space; a
// matrix(m,0,0,m,0,0) transform with m = min(width, height) maps them onto
// the physical canvas, and the stroke width is one user unit (1/m) so lines
// keep a constant apparent thickness.
func Encode(w io.Writer, strokes []turtle.Stroke, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if len(strokes) == 0 {
		return ErrNoStrokes
	}

	m := math.Min(opts.Width, opts.Height)
	width := formatDim(opts.Width)
	height := formatDim(opts.Height)
	scale := formatDim(m)
	unit := opts.Unit.String()

	var data strings.Builder
	for i, s := range strokes {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			data.WriteByte(' ')
			if s.Move {
				cmd = "M"
			}
		}
		fmt.Fprintf(&data, "%s %s,%s", cmd, s.X.FloatString(coordDigits), s.Y.FloatString(coordDigits))
	}

	if _, err := io.WriteString(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%s%s" height="%s%s" viewBox="0 0 %s %s">`+"\n",
		width, unit, height, unit, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		`<path fill="none" stroke="rgb(0%%,0%%,0%%)" stroke-width="%s" stroke-linecap="butt" stroke-linejoin="miter" transform="matrix(%s,0,0,%s,0,0)" d="%s"/>`+"\n",
		formatDim(1/m), scale, scale, data.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

// formatDim renders a canvas dimension with the shortest exact decimal
// form, so 100.0 serializes as "100".
func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
