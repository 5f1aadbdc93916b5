package svg

import "fmt"

// Unit is an SVG length unit suffix for the root element's width and
// height attributes.
//
// https://www.w3.org/TR/SVG/coords.html#Units
type Unit int

const (
	// UnitNone emits no suffix (user units).
	UnitNone Unit = iota
	UnitEm
	UnitEx
	UnitPx
	UnitIn
	UnitCm
	UnitMm
	UnitPt
	UnitPc
	UnitPercent
)

var unitSuffixes = map[Unit]string{
	UnitNone:    "",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPx:      "px",
	UnitIn:      "in",
	UnitCm:      "cm",
	UnitMm:      "mm",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitPercent: "%",
}

// String returns the attribute suffix for the unit ("mm", "%", ...).
func (u Unit) String() string {
	return unitSuffixes[u]
}

// ParseUnit parses a unit token. The empty string and "none" mean no
// suffix; "percent" is accepted as an alias for "%".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", "none":
		return UnitNone, nil
	case "percent":
		return UnitPercent, nil
	}
	for u, suffix := range unitSuffixes {
		if suffix == s {
			return u, nil
		}
	}
	return UnitNone, fmt.Errorf("unknown unit: %s", s)
}
