package format

import (
	"fmt"
	"strconv"
	"strings"
)

// SummaryMode controls how long selections are shortened for display
type SummaryMode int

const (
	SummaryNone SummaryMode = iota
	SummaryLeading
	SummaryCount
)

func (m SummaryMode) String() string {
	switch m {
	case SummaryLeading:
		return "leading"
	case SummaryCount:
		return "count"
	default:
		return "none"
	}
}

// ParseSummaryMode converts a configuration literal
func ParseSummaryMode(s string) (SummaryMode, error) {
	switch s {
	case "", "none":
		return SummaryNone, nil
	case "leading":
		return SummaryLeading, nil
	case "count":
		return SummaryCount, nil
	}
	return SummaryNone, fmt.Errorf("unknown summary mode %q", s)
}

const (
	DefaultLeadingFormat = "{shown} … +{more} more"
	DefaultCountFormat   = "{count} selected"
)

// Summary shortens the display text once more than Threshold values are selected
type Summary struct {
	Mode          SummaryMode
	Threshold     int
	LeadingFormat string
	CountFormat   string
}

// DefaultSummary disables summarising
func DefaultSummary() Summary {
	return Summary{
		LeadingFormat: DefaultLeadingFormat,
		CountFormat:   DefaultCountFormat,
	}
}

// Apply renders values, summarised when the mode and threshold call for it
func (s Summary) Apply(values []string, d Delimiter) string {
	n := len(values)
	if s.Mode == SummaryNone || n <= s.Threshold || n == 0 {
		return Join(values, d)
	}

	count := strconv.Itoa(n)
	switch s.Mode {
	case SummaryCount:
		return expand(orDefault(s.CountFormat, DefaultCountFormat), "", "", count)
	case SummaryLeading:
		if s.Threshold <= 0 {
			return expand(orDefault(s.CountFormat, DefaultCountFormat), "", "", count)
		}
		shown := Join(values[:s.Threshold], d)
		more := strconv.Itoa(n - s.Threshold)
		return expand(orDefault(s.LeadingFormat, DefaultLeadingFormat), shown, more, count)
	}
	return Join(values, d)
}

func expand(tmpl, shown, more, count string) string {
	return strings.NewReplacer("{shown}", shown, "{more}", more, "{count}", count).Replace(tmpl)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
