package combo

import (
	"reflect"

	"multiselect/internal/domain"
	"multiselect/internal/format"
)

// TypeSelection returns the output-role value of the item when field is
// ByData, otherwise its text. Missing items yield nil.
func (m *MultiSelect) TypeSelection(index int, field domain.Field) any {
	it, ok := m.store.Item(index)
	if !ok {
		return nil
	}
	return typeSelection(it, field, m.outputRole)
}

func typeSelection(it domain.Item, field domain.Field, role domain.Role) any {
	if field == domain.ByData {
		return it.Value(role)
	}
	return it.Text
}

// CurrentData returns, in index order, the output value of every checked item
func (m *MultiSelect) CurrentData() []any {
	indexes := m.cache.Indexes()
	out := make([]any, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, m.TypeSelection(i, m.outputType))
	}
	return out
}

// CurrentText joins the display value of every checked item with the delimiter
func (m *MultiSelect) CurrentText() string {
	return format.Join(m.displayValues(), m.delim)
}

// DisplayText is what the control shows: the placeholder when nothing is
// checked, otherwise CurrentText shortened by the summary settings
func (m *MultiSelect) DisplayText() string {
	values := m.displayValues()
	if len(values) == 0 {
		return m.placeholder
	}
	return m.summary.Apply(values, m.delim)
}

// ShownText returns the display text computed by the last refresh
func (m *MultiSelect) ShownText() string {
	return m.shownText
}

func (m *MultiSelect) displayValues() []string {
	indexes := m.cache.Indexes()
	out := make([]string, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, format.Stringify(m.TypeSelection(i, m.displayType)))
	}
	return out
}

// GetCurrentIndexes returns the checked indexes in ascending order
func (m *MultiSelect) GetCurrentIndexes() []int {
	return m.cache.Indexes()
}

// GetCurrentOptions returns (text, data) for every checked item in index order
func (m *MultiSelect) GetCurrentOptions() []domain.Option {
	indexes := m.cache.Indexes()
	out := make([]domain.Option, 0, len(indexes))
	for _, i := range indexes {
		it, ok := m.store.Item(i)
		if !ok {
			continue
		}
		out = append(out, domain.Option{Text: it.Text, Data: it.Value(m.outputRole)})
	}
	return out
}

// FindText returns the first item whose text matches, or -1. Without flags the
// comparison is exact and case-sensitive.
func (m *MultiSelect) FindText(text string, flags ...format.MatchFlag) int {
	matcher := format.NewMatcher(text, format.Flags(flags))
	for i, it := range m.store.Items() {
		if matcher.Match(it.Text) {
			return i
		}
	}
	return -1
}

// MatchIndexes returns every item whose text matches query, in index order
func (m *MultiSelect) MatchIndexes(query string, flags ...format.MatchFlag) []int {
	matcher := format.NewMatcher(query, format.Flags(flags))
	var out []int
	for i, it := range m.store.Items() {
		if matcher.Match(it.Text) {
			out = append(out, i)
		}
	}
	return out
}

// FindData returns the first item whose output-role value equals value, or -1
func (m *MultiSelect) FindData(value any) int {
	return m.FindDataInRole(value, m.outputRole)
}

// FindDataInRole returns the first item whose value at role equals value, or -1
func (m *MultiSelect) FindDataInRole(value any, role domain.Role) int {
	for i, it := range m.store.Items() {
		if reflect.DeepEqual(it.Value(role), value) {
			return i
		}
	}
	return -1
}
