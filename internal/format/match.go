package format

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchFlag controls how FindText compares strings
type MatchFlag int

const (
	MatchExactly       MatchFlag = 0
	MatchContains      MatchFlag = 1 << 0
	MatchStartsWith    MatchFlag = 1 << 1
	MatchEndsWith      MatchFlag = 1 << 2
	MatchCaseSensitive MatchFlag = 1 << 4
)

// DefaultMatch is an exact, case-sensitive comparison
const DefaultMatch = MatchExactly | MatchCaseSensitive

// Matcher compares candidate strings against a needle
type Matcher struct {
	flags  MatchFlag
	needle string
	fold   cases.Caser
}

// NewMatcher prepares needle for repeated comparisons
func NewMatcher(needle string, flags MatchFlag) *Matcher {
	m := &Matcher{flags: flags}
	if flags&MatchCaseSensitive == 0 {
		m.fold = cases.Fold()
		needle = m.fold.String(needle)
	}
	m.needle = needle
	return m
}

// Match reports whether s satisfies the needle under the matcher's flags
func (m *Matcher) Match(s string) bool {
	if m.flags&MatchCaseSensitive == 0 {
		s = m.fold.String(s)
	}
	switch {
	case m.flags&MatchContains != 0:
		return strings.Contains(s, m.needle)
	case m.flags&MatchStartsWith != 0:
		return strings.HasPrefix(s, m.needle)
	case m.flags&MatchEndsWith != 0:
		return strings.HasSuffix(s, m.needle)
	default:
		return s == m.needle
	}
}

// Flags combines a variadic flag list; none means DefaultMatch
func Flags(flags []MatchFlag) MatchFlag {
	if len(flags) == 0 {
		return DefaultMatch
	}
	var f MatchFlag
	for _, fl := range flags {
		f |= fl
	}
	return f
}
