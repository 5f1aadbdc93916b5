// Package render ties the pipeline together: expand the grammar, trace the
// turtle path, normalize it into the unit square, and serialize the SVG.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sameer/lsys/geom"
	"github.com/sameer/lsys/grammar"
	"github.com/sameer/lsys/svg"
	"github.com/sameer/lsys/turtle"
)

// ErrEmptyDrawing is returned when expansion and interpretation produce no
// strokes at all. A grammar that draws nothing has no bounding box, so the
// render is rejected rather than emitting a blank document.
var ErrEmptyDrawing = errors.New("empty drawing: no symbol produced a stroke")

// Render runs the full pipeline for sys and writes the SVG document to w.
//
// The pipeline is a pure function of its arguments: nothing is cached or
// retried, and concurrent calls with distinct arguments are safe. All fatal
// conditions are detected before the first byte reaches w; only sink errors
// can leave a partial document behind.
func Render(sys *grammar.System, opts svg.Options, w io.Writer) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	expanded := sys.Expand()
	strokes, err := turtle.Trace(expanded, sys.Draw, sys.Angle)
	if err != nil {
		return fmt.Errorf("interpret: %w", err)
	}
	if len(strokes) == 0 {
		return ErrEmptyDrawing
	}

	normalized, err := geom.Normalize(strokes, opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	return svg.Encode(w, normalized, opts)
}

// RenderString runs the pipeline and returns the document as a string.
func RenderString(sys *grammar.System, opts svg.Options) (string, error) {
	var sb strings.Builder
	if err := Render(sys, opts, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderFile runs the pipeline and writes the document to filename.
func RenderFile(sys *grammar.System, opts svg.Options, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Render(sys, opts, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
