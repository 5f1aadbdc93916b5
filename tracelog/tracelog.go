// Package tracelog exports turtle stroke sequences as CSV or JSON Lines,
// for debugging grammars and diffing renders outside the SVG pipeline.
package tracelog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/sameer/lsys/turtle"
)

// coordDigits matches the serializer's fixed coordinate precision so trace
// dumps diff cleanly against path data.
const coordDigits = 7

// Record is the JSONL form of a single stroke.
type Record struct {
	Index int    `json:"index"`
	X     string `json:"x"`
	Y     string `json:"y"`
	Move  bool   `json:"move"`
}

// WriteCSV writes the stroke sequence as CSV with an index,x,y,move header.
func WriteCSV(w io.Writer, strokes []turtle.Stroke) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y", "move"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, s := range strokes {
		row := []string{
			strconv.Itoa(i),
			s.X.FloatString(coordDigits),
			s.Y.FloatString(coordDigits),
			strconv.FormatBool(s.Move),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSONL writes the stroke sequence as one JSON object per line.
func WriteJSONL(w io.Writer, strokes []turtle.Stroke) error {
	enc := json.NewEncoder(w)
	for i, s := range strokes {
		rec := Record{
			Index: i,
			X:     s.X.FloatString(coordDigits),
			Y:     s.Y.FloatString(coordDigits),
			Move:  s.Move,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return nil
}
