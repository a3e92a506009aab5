package logic

import (
	"fmt"
	"sync"

	"multiselect/internal/domain"
)

// MemoryItemStore is an in-memory implementation of ItemStore
type MemoryItemStore struct {
	mu        sync.RWMutex
	items     []domain.Item
	revision  uint64
	observers map[uint64]Observer
	order     []uint64 // observer registration order
	nextID    uint64
}

// NewMemoryItemStore creates a new memory-based item store
func NewMemoryItemStore(items ...domain.Item) *MemoryItemStore {
	s := &MemoryItemStore{
		observers: make(map[uint64]Observer),
	}
	for _, it := range items {
		s.items = append(s.items, normalize(it))
	}
	return s
}

func normalize(it domain.Item) domain.Item {
	it = it.Clone()
	if it.Data == nil {
		it.Data = make(map[domain.Role]any)
	}
	return it
}

func (s *MemoryItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MemoryItemStore) Item(index int) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return domain.Item{}, false
	}
	return s.items[index].Clone(), true
}

func (s *MemoryItemStore) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Item, len(s.items))
	for i, it := range s.items {
		result[i] = it.Clone()
	}
	return result
}

// Revision increments on every mutation
func (s *MemoryItemStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *MemoryItemStore) Append(item domain.Item) int {
	s.mu.Lock()
	s.items = append(s.items, normalize(item))
	index := len(s.items) - 1
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.ItemsInserted(index, 1) })
	return index
}

func (s *MemoryItemStore) Insert(index int, item domain.Item) error {
	s.mu.Lock()
	if index < 0 || index > len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("insert at %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	s.items = append(s.items, domain.Item{})
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = normalize(item)
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.ItemsInserted(index, 1) })
	return nil
}

func (s *MemoryItemStore) Remove(index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("remove %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.ItemsRemoved(index, 1) })
	return nil
}

// SetChecked updates the flag; observers are only told about real changes
func (s *MemoryItemStore) SetChecked(index int, checked bool) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("set checked %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	if s.items[index].Checked == checked {
		s.mu.Unlock()
		return nil
	}
	s.items[index].Checked = checked
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.CheckChanged(index, checked) })
	return nil
}

func (s *MemoryItemStore) SetEnabled(index int, enabled bool) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("set enabled %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	s.items[index].Enabled = enabled
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.DataChanged(index) })
	return nil
}

// SetData stores value at role; RoleDisplay replaces the text
func (s *MemoryItemStore) SetData(index int, role domain.Role, value any) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.items) {
		n := len(s.items)
		s.mu.Unlock()
		return fmt.Errorf("set data %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	if role == domain.RoleDisplay {
		s.items[index].Text = fmt.Sprint(value)
	} else {
		s.items[index].Data[role] = value
	}
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.DataChanged(index) })
	return nil
}

// Reset replaces the whole collection
func (s *MemoryItemStore) Reset(items []domain.Item) {
	s.mu.Lock()
	s.items = make([]domain.Item, 0, len(items))
	for _, it := range items {
		s.items = append(s.items, normalize(it))
	}
	s.revision++
	s.mu.Unlock()

	s.notify(func(o Observer) { o.ModelReset() })
}

func (s *MemoryItemStore) Observe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers[id] = o
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.observers, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

// notify calls observers outside the lock so they can read the store
func (s *MemoryItemStore) notify(fn func(Observer)) {
	s.mu.RLock()
	obs := make([]Observer, 0, len(s.order))
	for _, id := range s.order {
		obs = append(obs, s.observers[id])
	}
	s.mu.RUnlock()

	for _, o := range obs {
		fn(o)
	}
}
