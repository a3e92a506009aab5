package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Delimiter joins display values
type Delimiter struct {
	Symbol      string
	SpaceBefore bool
	SpaceAfter  bool
}

// DefaultDelimiter is ", "
func DefaultDelimiter() Delimiter {
	return Delimiter{Symbol: ",", SpaceAfter: true}
}

// String returns the padded separator
func (d Delimiter) String() string {
	var b strings.Builder
	if d.SpaceBefore {
		b.WriteByte(' ')
	}
	b.WriteString(d.Symbol)
	if d.SpaceAfter {
		b.WriteByte(' ')
	}
	return b.String()
}

// Stringify converts an item value into display text
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(v)
	}
}

// Join concatenates values with the delimiter
func Join(values []string, d Delimiter) string {
	return strings.Join(values, d.String())
}

// Split breaks a joined string on the delimiter symbol and trims surrounding
// spaces from each token. An empty or blank string yields no tokens.
func Split(s string, d Delimiter) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	sep := d.Symbol
	if sep == "" {
		sep = d.String()
	}
	if strings.TrimSpace(sep) == "" {
		// A whitespace-only delimiter cannot be trimmed away
		return strings.Fields(s)
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(p, " "))
	}
	return out
}
