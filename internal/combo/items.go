package combo

import (
	"log/slog"
	"reflect"
	"slices"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// AddItem appends an item. data is stored at the default role; without it the
// default role holds the text. With duplicates disabled a candidate whose text
// or data matches an existing item is skipped and AddItem reports false.
func (m *MultiSelect) AddItem(text string, data ...any) bool {
	var value any
	if len(data) > 0 {
		value = data[0]
	}
	return m.addItem(text, value)
}

// AddItems appends texts paired with dataList. Missing data entries leave the
// item without explicit data. Each entry is checked against the duplicate
// policy on its own; the number of inserted items is returned.
func (m *MultiSelect) AddItems(texts []string, dataList []any) int {
	added := 0
	for i, text := range texts {
		var value any
		if i < len(dataList) {
			value = dataList[i]
		}
		if m.addItem(text, value) {
			added++
		}
	}
	return added
}

func (m *MultiSelect) addItem(text string, data any) bool {
	item := domain.NewItem(text, data)
	if !m.duplicates && m.IsDuplicate(text, item.Value(domain.RoleUser)) {
		slog.Debug("Duplicate item skipped", "text", text)
		m.bus.Publish(eventbus.ItemSkippedEvent{Text: text, Data: data})
		return false
	}
	m.store.Append(item)
	return true
}

// IsDuplicate reports whether an existing item has the same text or the same
// value at the default role
func (m *MultiSelect) IsDuplicate(text string, data any) bool {
	for _, it := range m.store.Items() {
		if it.Text == text {
			return true
		}
		if data != nil && reflect.DeepEqual(it.Value(domain.RoleUser), data) {
			return true
		}
	}
	return false
}

// RemoveItem deletes the item at index
func (m *MultiSelect) RemoveItem(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	return m.store.Remove(index)
}

// RemoveItems deletes every listed index in one refresh. Nothing is removed
// when any index is out of range.
func (m *MultiSelect) RemoveItems(indexes []int) error {
	for _, i := range indexes {
		if err := m.checkIndex(i); err != nil {
			return err
		}
	}
	sorted := slices.Clone(indexes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var err error
	m.batch(func() {
		for j := len(sorted) - 1; j >= 0; j-- {
			if err = m.store.Remove(sorted[j]); err != nil {
				return
			}
		}
	})
	return err
}

// Clear removes every item
func (m *MultiSelect) Clear() {
	m.store.Reset(nil)
}

// SetItemChecked sets one item's flag; the refresh is deferred
func (m *MultiSelect) SetItemChecked(index int, checked bool) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	return m.store.SetChecked(index, checked)
}

// SetItemEnabled marks an item as available for interactive toggling
func (m *MultiSelect) SetItemEnabled(index int, enabled bool) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	return m.store.SetEnabled(index, enabled)
}

// SetItemData stores value at role for one item
func (m *MultiSelect) SetItemData(index int, role domain.Role, value any) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	return m.store.SetData(index, role, value)
}

// Count returns the number of real items
func (m *MultiSelect) Count() int {
	return m.store.Len()
}

// ItemText returns the text of the item at index
func (m *MultiSelect) ItemText(index int) (string, bool) {
	it, ok := m.store.Item(index)
	return it.Text, ok
}

// ItemData returns the value at role for the item at index
func (m *MultiSelect) ItemData(index int, role domain.Role) (any, bool) {
	it, ok := m.store.Item(index)
	if !ok {
		return nil, false
	}
	return it.Value(role), true
}

// IsItemChecked reports whether the item at index is checked
func (m *MultiSelect) IsItemChecked(index int) bool {
	return m.cache.Contains(index)
}

// IsItemEnabled reports whether the item at index accepts interactive toggles
func (m *MultiSelect) IsItemEnabled(index int) bool {
	it, ok := m.store.Item(index)
	return ok && it.Enabled
}
