// Package grammar models 2D L-systems and their string expansion.
// An L-system is an axiom string plus per-symbol production rules; each
// generation rewrites every symbol simultaneously.
package grammar

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// Reserved turtle command symbols. These are never rewritten by rules.
const (
	TurnLeft  = '+'
	TurnRight = '-'
	Reverse   = '|'
	Push      = '['
	Pop       = ']'
)

// Reserved reports whether r is one of the turtle command symbols.
func Reserved(r rune) bool {
	switch r {
	case TurnLeft, TurnRight, Reverse, Push, Pop:
		return true
	}
	return false
}

// System is a complete L-system description: what to rewrite, which symbols
// draw, how far to turn, and how many generations to run.
type System struct {
	// Axiom is the initial string.
	Axiom string
	// Rules maps a symbol to its replacement string.
	Rules map[rune]string
	// Draw marks symbols that move the turtle forward and draw a segment.
	Draw map[rune]bool
	// Angle is the turn angle in radians.
	Angle *big.Rat
	// Iterations is the number of rewriting generations.
	Iterations int
}

// DrawSet builds a draw map from the runes of s.
func DrawSet(s string) map[rune]bool {
	draw := make(map[rune]bool, len(s))
	for _, r := range s {
		draw[r] = true
	}
	return draw
}

// Expand applies n simultaneous substitution passes to axiom.
// Reserved symbols always pass through unchanged. A symbol with no rule is
// treated as an identity production, so expansion never fails.
// Expansion is a pure function of its arguments.
func Expand(axiom string, rules map[rune]string, n int) string {
	state := axiom
	for i := 0; i < n; i++ {
		var next strings.Builder
		// Each pass grows the state by roughly the mean rule length.
		next.Grow(len(state) * 2)
		for _, r := range state {
			if Reserved(r) {
				next.WriteRune(r)
				continue
			}
			if replacement, ok := rules[r]; ok {
				next.WriteString(replacement)
			} else {
				next.WriteRune(r)
			}
		}
		state = next.String()
	}
	return state
}

// Expand runs the system's own axiom and rules for its iteration count.
func (s *System) Expand() string {
	return Expand(s.Axiom, s.Rules, s.Iterations)
}

// Alphabet returns every non-reserved symbol reachable from the axiom, the
// rule heads, and the rule replacements.
func (s *System) Alphabet() map[rune]bool {
	alphabet := make(map[rune]bool)
	add := func(str string) {
		for _, r := range str {
			if !Reserved(r) {
				alphabet[r] = true
			}
		}
	}
	add(s.Axiom)
	for head, replacement := range s.Rules {
		alphabet[head] = true
		add(replacement)
	}
	return alphabet
}

// Validate returns human-readable warnings about the system: symbols that
// will silently self-replace, and draw symbols that never occur. Warnings
// never block rendering; callers that want strict behavior can reject a
// system with a non-empty warning list.
func (s *System) Validate() []string {
	var warnings []string

	missing := make(map[rune]bool)
	check := func(str string) {
		for _, r := range str {
			if Reserved(r) || missing[r] {
				continue
			}
			if _, ok := s.Rules[r]; !ok {
				missing[r] = true
			}
		}
	}
	check(s.Axiom)
	for _, replacement := range s.Rules {
		check(replacement)
	}
	for _, r := range sortedRunes(missing) {
		warnings = append(warnings, fmt.Sprintf("no replacement rule for %q, assuming self-replacement (%q => %q)", r, r, r))
	}

	alphabet := s.Alphabet()
	unknown := make(map[rune]bool)
	for r := range s.Draw {
		if !alphabet[r] {
			unknown[r] = true
		}
	}
	for _, r := range sortedRunes(unknown) {
		warnings = append(warnings, fmt.Sprintf("draw symbol %q never occurs in the system", r))
	}

	return warnings
}

func sortedRunes(set map[rune]bool) []rune {
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}
