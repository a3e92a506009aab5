package selection

import (
	"log/slog"
	"slices"

	"multiselect/internal/logic"
)

// Cache tracks which rows of an attached store are checked
type Cache struct {
	state    *State
	store    logic.ItemStore
	detach   func()
	onChange func(Change)
}

// NewCache creates an empty, unattached cache
func NewCache() *Cache {
	return &Cache{state: newState()}
}

// OnChange sets the function called after every cache update
func (c *Cache) OnChange(fn func(Change)) {
	c.onChange = fn
}

// Attach subscribes to store, dropping any previous subscription, and
// rebuilds the cache from a full scan
func (c *Cache) Attach(store logic.ItemStore) {
	c.Detach()
	c.store = store
	if store == nil {
		c.state = newState()
		return
	}
	c.detach = store.Observe(c)
	c.Rebuild()
}

// Detach stops observing the current store
func (c *Cache) Detach() {
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
}

// Store returns the attached store
func (c *Cache) Store() logic.ItemStore {
	return c.store
}

// Rebuild clears the cache and scans the store
func (c *Cache) Rebuild() {
	c.state = newState()
	if c.store == nil {
		return
	}
	for i, it := range c.store.Items() {
		if it.Checked {
			c.state.Checked[i] = struct{}{}
		}
	}
}

// Indexes returns the checked rows in ascending order
func (c *Cache) Indexes() []int {
	out := make([]int, 0, len(c.state.Checked))
	for i := range c.state.Checked {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Contains reports whether row i is checked
func (c *Cache) Contains(i int) bool {
	_, ok := c.state.Checked[i]
	return ok
}

// Len returns the number of checked rows
func (c *Cache) Len() int {
	return len(c.state.Checked)
}

// Verify reports whether the cache equals a fresh scan of the store
func (c *Cache) Verify() bool {
	if c.store == nil {
		return len(c.state.Checked) == 0
	}
	items := c.store.Items()
	n := 0
	for i, it := range items {
		if it.Checked {
			n++
			if !c.Contains(i) {
				return false
			}
		}
	}
	return n == len(c.state.Checked)
}

// ItemsInserted shifts rows at or above first up by count, picks up new rows
// that arrive checked, then rescans
func (c *Cache) ItemsInserted(first, count int) {
	shifted := make(map[int]struct{}, len(c.state.Checked))
	for i := range c.state.Checked {
		if i >= first {
			i += count
		}
		shifted[i] = struct{}{}
	}
	for i := first; i < first+count; i++ {
		if it, ok := c.store.Item(i); ok && it.Checked {
			shifted[i] = struct{}{}
		}
	}
	c.state.Checked = shifted
	c.reconcile()
	c.emit(Change{Kind: ChangeStructure, Index: first})
}

// ItemsRemoved drops the removed rows and shifts rows above them down, then rescans
func (c *Cache) ItemsRemoved(first, count int) {
	shifted := make(map[int]struct{}, len(c.state.Checked))
	for i := range c.state.Checked {
		switch {
		case i < first:
			shifted[i] = struct{}{}
		case i >= first+count:
			shifted[i-count] = struct{}{}
		}
	}
	c.state.Checked = shifted
	c.reconcile()
	c.emit(Change{Kind: ChangeStructure, Index: first})
}

// CheckChanged applies a single toggle incrementally
func (c *Cache) CheckChanged(index int, checked bool) {
	if checked {
		c.state.Checked[index] = struct{}{}
	} else {
		delete(c.state.Checked, index)
	}
	c.emit(Change{Kind: ChangeToggle, Index: index, Checked: checked})
}

func (c *Cache) DataChanged(index int) {
	c.emit(Change{Kind: ChangeData, Index: index})
}

func (c *Cache) ModelReset() {
	c.Rebuild()
	c.emit(Change{Kind: ChangeStructure, Index: -1})
}

// reconcile replaces the incrementally shifted set with a scan when they differ
func (c *Cache) reconcile() {
	if c.Verify() {
		return
	}
	slog.Warn("Selection cache drifted from store, rebuilding", "cached", c.Len())
	c.Rebuild()
}

func (c *Cache) emit(ch Change) {
	if c.onChange != nil {
		c.onChange(ch)
	}
}
