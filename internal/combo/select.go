package combo

import (
	"log/slog"
	"reflect"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/format"
)

// SetCurrentIndexes checks exactly the given items and unchecks the rest.
// If any index is out of range nothing changes and an *IndexError is returned.
func (m *MultiSelect) SetCurrentIndexes(indexes []int) error {
	want := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		if err := m.checkIndex(i); err != nil {
			return err
		}
		want[i] = true
	}
	m.applyChecked(m.store.Len(), want)
	return nil
}

// SetCurrentText splits value on the display delimiter and selects the
// matching items; see SetCurrentTexts
func (m *MultiSelect) SetCurrentText(value string) {
	m.SetCurrentTexts(format.Split(value, m.delim))
}

// SetCurrentTexts selects the items named by tokens. A token matches items by
// text first and, failing that, by the string form of their output-role data.
// Unmatched tokens are ignored and every unmatched item is unchecked.
func (m *MultiSelect) SetCurrentTexts(tokens []string) {
	items := m.store.Items()
	want := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		matched := false
		for i, it := range items {
			if it.Text == tok {
				want[i] = true
				matched = true
			}
		}
		if matched {
			continue
		}
		for i, it := range items {
			if v := it.Value(m.outputRole); v != nil && format.Stringify(v) == tok {
				want[i] = true
				matched = true
			}
		}
		if !matched {
			slog.Debug("Unmatched selection token ignored", "token", tok)
		}
	}
	m.applyChecked(len(items), want)
}

// SetCurrentDataValues selects the items whose output-role value deep-equals
// one of values. Unmatched values are ignored and every unmatched item is
// unchecked.
func (m *MultiSelect) SetCurrentDataValues(values []any) {
	items := m.store.Items()
	want := make(map[int]bool, len(values))
	for _, v := range values {
		matched := false
		for i, it := range items {
			if reflect.DeepEqual(it.Value(m.outputRole), v) {
				want[i] = true
				matched = true
			}
		}
		if !matched {
			slog.Debug("Unmatched selection value ignored", "value", v)
		}
	}
	m.applyChecked(len(items), want)
}

// applyChecked checks the first n rows listed in want and unchecks the rest
// in one batch
func (m *MultiSelect) applyChecked(n int, want map[int]bool) {
	m.batch(func() {
		for i := 0; i < n; i++ {
			m.setChecked(i, want[i])
		}
	})
}

// setChecked writes one flag. A store that rejects the write is logged and
// the row is skipped.
func (m *MultiSelect) setChecked(index int, checked bool) bool {
	if err := m.store.SetChecked(index, checked); err != nil {
		slog.Debug("Store rejected check change", "index", index, "checked", checked, "error", err)
		return false
	}
	return true
}

// SelectAll checks every item
func (m *MultiSelect) SelectAll() {
	m.setAll(true)
}

// ClearSelection unchecks every item
func (m *MultiSelect) ClearSelection() {
	m.setAll(false)
}

func (m *MultiSelect) setAll(checked bool) {
	m.batch(func() {
		for i := 0; i < m.store.Len(); i++ {
			m.setChecked(i, checked)
		}
	})
}

// InvertSelection flips every item's checked flag
func (m *MultiSelect) InvertSelection() {
	m.batch(func() {
		for i, it := range m.store.Items() {
			m.setChecked(i, !it.Checked)
		}
	})
}

// ToggleItem is the interactive toggle. Disabled items are left alone and a
// check that would exceed the maximum selection count is refused. It reports
// whether the item changed.
func (m *MultiSelect) ToggleItem(index int) (bool, error) {
	if err := m.checkIndex(index); err != nil {
		return false, err
	}
	it, _ := m.store.Item(index)
	if !it.Enabled {
		slog.Debug("Toggle on disabled item ignored", "index", index)
		return false, nil
	}
	if !it.Checked && m.limitReached() {
		slog.Debug("Selection limit reached", "index", index, "limit", m.maxSelection)
		m.bus.Publish(eventbus.SelectionLimitReachedEvent{Index: index, Limit: m.maxSelection})
		return false, nil
	}
	var err error
	m.batch(func() {
		err = m.store.SetChecked(index, !it.Checked)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ToggleSelectAll applies a click on the select-all pseudo-item: unchecked or
// partial checks every enabled item (up to the selection limit), fully
// checked unchecks them. It does nothing while the pseudo-item is disabled.
func (m *MultiSelect) ToggleSelectAll() {
	if !m.selectAll {
		slog.Debug("Select-all toggle ignored, pseudo-item disabled")
		return
	}
	items := m.store.Items()
	allOn := len(items) > 0
	for _, it := range items {
		if it.Enabled && !it.Checked {
			allOn = false
			break
		}
	}

	m.batch(func() {
		if allOn || m.SelectAllState() == domain.Checked {
			for i, it := range items {
				if it.Enabled {
					m.setChecked(i, false)
				}
			}
			return
		}
		checked := m.cache.Len()
		changed := false
		for i, it := range items {
			if !it.Enabled || it.Checked {
				continue
			}
			if m.maxSelection > 0 && checked >= m.maxSelection {
				m.bus.Publish(eventbus.SelectionLimitReachedEvent{Index: i, Limit: m.maxSelection})
				break
			}
			if m.setChecked(i, true) {
				checked++
				changed = true
			}
		}
		if !changed {
			// Nothing left to check under the limit; treat the click as "none"
			for i, it := range items {
				if it.Enabled {
					m.setChecked(i, false)
				}
			}
		}
	})
}

// SelectAllState derives the pseudo-item's tri-state from the real items
func (m *MultiSelect) SelectAllState() domain.CheckState {
	n, total := m.cache.Len(), m.store.Len()
	switch {
	case n == 0 || total == 0:
		return domain.Unchecked
	case n == total:
		return domain.Checked
	default:
		return domain.PartiallyChecked
	}
}

func (m *MultiSelect) limitReached() bool {
	return m.maxSelection > 0 && m.cache.Len() >= m.maxSelection
}
