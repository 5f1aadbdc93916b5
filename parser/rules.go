// Package parser handles the textual and JSON forms of L-system models.
//
// Rules use the textual form "F=>F+F-F-F+F"; complete models round-trip
// through a small JSON document.
package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ParseRule parses a single "symbol=>replacement" rule.
func ParseRule(s string) (rune, string, error) {
	head, replacement, found := strings.Cut(s, "=>")
	if !found {
		return 0, "", fmt.Errorf("rule %q must contain \"=>\"", s)
	}
	if utf8.RuneCountInString(head) != 1 {
		return 0, "", fmt.Errorf("rule %q: \"=>\" must be preceded by a single symbol", s)
	}
	if replacement == "" {
		return 0, "", fmt.Errorf("rule %q: \"=>\" must be followed by a replacement string", s)
	}
	r, _ := utf8.DecodeRuneInString(head)
	return r, replacement, nil
}

// ParseRules parses a list of textual rules into a rule map. Duplicate
// heads are rejected.
func ParseRules(rules []string) (map[rune]string, error) {
	parsed := make(map[rune]string, len(rules))
	for _, rule := range rules {
		head, replacement, err := ParseRule(rule)
		if err != nil {
			return nil, err
		}
		if _, ok := parsed[head]; ok {
			return nil, fmt.Errorf("duplicate rule for %q", head)
		}
		parsed[head] = replacement
	}
	return parsed, nil
}

// FormatRules renders a rule map back to sorted "symbol=>replacement"
// lines, the inverse of ParseRules.
func FormatRules(rules map[rune]string) []string {
	lines := make([]string, 0, len(rules))
	for head, replacement := range rules {
		lines = append(lines, fmt.Sprintf("%c=>%s", head, replacement))
	}
	sort.Strings(lines)
	return lines
}
