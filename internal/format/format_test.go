package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDelimiterString(t *testing.T) {
	t.Parallel()
	require.Equal(t, ", ", DefaultDelimiter().String())
	require.Equal(t, " | ", Delimiter{Symbol: "|", SpaceBefore: true, SpaceAfter: true}.String())
	require.Equal(t, ";", Delimiter{Symbol: ";"}.String())
}

func TestStringify(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", Stringify(nil))
	require.Equal(t, "x", Stringify("x"))
	require.Equal(t, "42", Stringify(42))
	require.Equal(t, "1.5", Stringify(1.5))
	require.Equal(t, "1s", Stringify(time.Second))
}

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		delim Delimiter
		want  []string
	}{
		{name: "default", input: "a, b,c", delim: DefaultDelimiter(), want: []string{"a", "b", "c"}},
		{name: "padded symbol", input: "a | b", delim: Delimiter{Symbol: "|", SpaceBefore: true, SpaceAfter: true}, want: []string{"a", "b"}},
		{name: "empty", input: "", delim: DefaultDelimiter(), want: nil},
		{name: "blank", input: "   ", delim: DefaultDelimiter(), want: nil},
		{name: "empty token kept", input: "a,,b", delim: DefaultDelimiter(), want: []string{"a", "", "b"}},
		{name: "whitespace delimiter", input: "a  b c", delim: Delimiter{Symbol: " "}, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.input, tt.delim))
		})
	}
}

func TestJoinSplitRoundTrip(t *testing.T) {
	t.Parallel()
	d := Delimiter{Symbol: ";", SpaceAfter: true}
	values := []string{"Apple", "Banana split", "Cherry"}
	require.Equal(t, values, Split(Join(values, d), d))
}

func TestParseSummaryMode(t *testing.T) {
	t.Parallel()
	for _, m := range []SummaryMode{SummaryNone, SummaryLeading, SummaryCount} {
		got, err := ParseSummaryMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	got, err := ParseSummaryMode("")
	require.NoError(t, err)
	require.Equal(t, SummaryNone, got)

	_, err = ParseSummaryMode("tail")
	require.Error(t, err)
}

func TestSummaryApply(t *testing.T) {
	t.Parallel()
	values := []string{"a", "b", "c", "d"}
	d := DefaultDelimiter()

	tests := []struct {
		name    string
		summary Summary
		values  []string
		want    string
	}{
		{name: "none", summary: DefaultSummary(), values: values, want: "a, b, c, d"},
		{name: "under threshold", summary: Summary{Mode: SummaryLeading, Threshold: 4}, values: values, want: "a, b, c, d"},
		{name: "leading", summary: Summary{Mode: SummaryLeading, Threshold: 2}, values: values, want: "a, b … +2 more"},
		{name: "leading zero threshold", summary: Summary{Mode: SummaryLeading}, values: values, want: "4 selected"},
		{name: "count", summary: Summary{Mode: SummaryCount, Threshold: 1}, values: values, want: "4 selected"},
		{name: "custom format", summary: Summary{Mode: SummaryCount, CountFormat: "{count} fruits"}, values: values, want: "4 fruits"},
		{name: "empty", summary: Summary{Mode: SummaryCount}, values: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.summary.Apply(tt.values, d))
		})
	}
}

func TestMatcher(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		needle string
		flags  MatchFlag
		input  string
		want   bool
	}{
		{name: "exact", needle: "Apple", flags: DefaultMatch, input: "Apple", want: true},
		{name: "exact case", needle: "apple", flags: DefaultMatch, input: "Apple", want: false},
		{name: "exact folded", needle: "apple", flags: MatchExactly, input: "APPLE", want: true},
		{name: "contains", needle: "pp", flags: MatchContains | MatchCaseSensitive, input: "Apple", want: true},
		{name: "contains folded", needle: "AN", flags: MatchContains, input: "Banana", want: true},
		{name: "starts", needle: "Ba", flags: MatchStartsWith | MatchCaseSensitive, input: "Banana", want: true},
		{name: "starts miss", needle: "na", flags: MatchStartsWith, input: "Banana", want: false},
		{name: "ends", needle: "NA", flags: MatchEndsWith, input: "Banana", want: true},
		{name: "sharp s folds", needle: "STRASSE", flags: MatchExactly, input: "straße", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewMatcher(tt.needle, tt.flags).Match(tt.input))
		})
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()
	require.Equal(t, DefaultMatch, Flags(nil))
	require.Equal(t, MatchContains|MatchCaseSensitive, Flags([]MatchFlag{MatchContains, MatchCaseSensitive}))
}
