package combo

import (
	"log/slog"

	"multiselect/internal/domain"
	"multiselect/internal/format"
)

var fieldLiterals = []string{"data", "text"}

// SetOutputType selects what CurrentData and selection events carry: "data" or "text"
func (m *MultiSelect) SetOutputType(outputType string) error {
	f, err := domain.ParseField(outputType)
	if err != nil {
		slog.Warn("Rejected output type", "value", outputType)
		return &ConfigurationError{Option: "output type", Value: outputType, Allowed: fieldLiterals}
	}
	m.outputType = f
	return nil
}

// GetOutputType returns "data" or "text"
func (m *MultiSelect) GetOutputType() string {
	return m.outputType.String()
}

// OutputField returns the parsed output type
func (m *MultiSelect) OutputField() domain.Field {
	return m.outputType
}

// SetDisplayType selects what the display text is built from: "data" or "text"
func (m *MultiSelect) SetDisplayType(displayType string) error {
	f, err := domain.ParseField(displayType)
	if err != nil {
		slog.Warn("Rejected display type", "value", displayType)
		return &ConfigurationError{Option: "display type", Value: displayType, Allowed: fieldLiterals}
	}
	m.displayType = f
	m.updateText()
	return nil
}

// GetDisplayType returns "data" or "text"
func (m *MultiSelect) GetDisplayType() string {
	return m.displayType.String()
}

// DelimiterOption adjusts the padding of the display delimiter
type DelimiterOption func(*format.Delimiter)

// WithSpaceBefore pads the delimiter with a leading space
func WithSpaceBefore(on bool) DelimiterOption {
	return func(d *format.Delimiter) { d.SpaceBefore = on }
}

// WithSpaceAfter pads the delimiter with a trailing space
func WithSpaceAfter(on bool) DelimiterOption {
	return func(d *format.Delimiter) { d.SpaceAfter = on }
}

// SetDisplayDelimiter sets the separator symbol. By default a space follows it
// and none precedes it.
func (m *MultiSelect) SetDisplayDelimiter(symbol string, opts ...DelimiterOption) {
	d := format.Delimiter{Symbol: symbol, SpaceAfter: true}
	for _, opt := range opts {
		opt(&d)
	}
	m.delim = d
	m.updateText()
}

// GetDisplayDelimiter returns the padded separator
func (m *MultiSelect) GetDisplayDelimiter() string {
	return m.delim.String()
}

// Delimiter returns the delimiter settings
func (m *MultiSelect) Delimiter() format.Delimiter {
	return m.delim
}

// SetOutputDataRole selects the role read for data output, display and find
func (m *MultiSelect) SetOutputDataRole(role domain.Role) {
	m.outputRole = role
	m.updateText()
}

func (m *MultiSelect) GetOutputDataRole() domain.Role {
	return m.outputRole
}

// SetDuplicatesEnabled controls whether AddItem accepts duplicate text or data
func (m *MultiSelect) SetDuplicatesEnabled(enabled bool) {
	m.duplicates = enabled
}

func (m *MultiSelect) IsDuplicatesEnabled() bool {
	return m.duplicates
}

// SetSelectAllEnabled shows or hides the select-all pseudo-item
func (m *MultiSelect) SetSelectAllEnabled(enabled bool) {
	m.selectAll = enabled
}

func (m *MultiSelect) IsSelectAllEnabled() bool {
	return m.selectAll
}

// SetSelectAllText sets the pseudo-item's label; empty restores the default
func (m *MultiSelect) SetSelectAllText(text string) {
	if text == "" {
		text = DefaultSelectAllText
	}
	m.selectAllText = text
}

func (m *MultiSelect) GetSelectAllText() string {
	return m.selectAllText
}

// SetPlaceholderText sets the text shown while nothing is checked
func (m *MultiSelect) SetPlaceholderText(text string) {
	m.placeholder = text
	m.updateText()
}

func (m *MultiSelect) GetPlaceholderText() string {
	return m.placeholder
}

// SetMaxSelectionCount limits interactive checks; 0 means unlimited
func (m *MultiSelect) SetMaxSelectionCount(n int) {
	if n < 0 {
		n = 0
	}
	m.maxSelection = n
}

func (m *MultiSelect) GetMaxSelectionCount() int {
	return m.maxSelection
}

// SetCloseOnSelect asks the front-end to close the popup after each toggle
func (m *MultiSelect) SetCloseOnSelect(enabled bool) {
	m.closeOnSelect = enabled
}

func (m *MultiSelect) IsCloseOnSelect() bool {
	return m.closeOnSelect
}

// SetSummaryMode accepts "none", "leading" or "count"
func (m *MultiSelect) SetSummaryMode(mode string) error {
	sm, err := format.ParseSummaryMode(mode)
	if err != nil {
		slog.Warn("Rejected summary mode", "value", mode)
		return &ConfigurationError{Option: "summary mode", Value: mode, Allowed: []string{"none", "leading", "count"}}
	}
	m.summary.Mode = sm
	m.updateText()
	return nil
}

func (m *MultiSelect) GetSummaryMode() string {
	return m.summary.Mode.String()
}

// SetSummaryThreshold sets how many values are shown before summarising
func (m *MultiSelect) SetSummaryThreshold(n int) {
	if n < 0 {
		n = 0
	}
	m.summary.Threshold = n
	m.updateText()
}

func (m *MultiSelect) GetSummaryThreshold() int {
	return m.summary.Threshold
}

// SetSummaryFormat overrides the leading and count templates; empty keeps the default.
// Templates may use {shown}, {more} and {count}.
func (m *MultiSelect) SetSummaryFormat(leading, count string) {
	if leading != "" {
		m.summary.LeadingFormat = leading
	}
	if count != "" {
		m.summary.CountFormat = count
	}
	m.updateText()
}

// SetCoalescingEnabled switches deferred refreshes on or off
func (m *MultiSelect) SetCoalescingEnabled(enabled bool) {
	m.co.SetEnabled(enabled)
}

func (m *MultiSelect) IsCoalescingEnabled() bool {
	return m.co.Enabled()
}
