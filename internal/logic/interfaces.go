package logic

import (
	"errors"

	"multiselect/internal/domain"
)

// ErrIndexOutOfRange is returned by store mutations addressed at a missing row
var ErrIndexOutOfRange = errors.New("index out of range")

// ItemStore provides ordered access to item data
type ItemStore interface {
	Len() int
	Item(index int) (domain.Item, bool)
	Items() []domain.Item
	Revision() uint64

	Append(item domain.Item) int
	Insert(index int, item domain.Item) error
	Remove(index int) error
	SetChecked(index int, checked bool) error
	SetEnabled(index int, enabled bool) error
	SetData(index int, role domain.Role, value any) error
	Reset(items []domain.Item)

	// Observe registers an observer and returns a detach function
	Observe(o Observer) func()
}

// Observer receives structural and flag-change notifications from an ItemStore.
// Notifications are delivered synchronously after the store has been updated.
type Observer interface {
	ItemsInserted(first, count int)
	ItemsRemoved(first, count int)
	CheckChanged(index int, checked bool)
	DataChanged(index int)
	ModelReset()
}

// ObserverFuncs adapts plain functions to the Observer interface; nil fields are skipped
type ObserverFuncs struct {
	OnInserted     func(first, count int)
	OnRemoved      func(first, count int)
	OnCheckChanged func(index int, checked bool)
	OnDataChanged  func(index int)
	OnReset        func()
}

func (o ObserverFuncs) ItemsInserted(first, count int) {
	if o.OnInserted != nil {
		o.OnInserted(first, count)
	}
}

func (o ObserverFuncs) ItemsRemoved(first, count int) {
	if o.OnRemoved != nil {
		o.OnRemoved(first, count)
	}
}

func (o ObserverFuncs) CheckChanged(index int, checked bool) {
	if o.OnCheckChanged != nil {
		o.OnCheckChanged(index, checked)
	}
}

func (o ObserverFuncs) DataChanged(index int) {
	if o.OnDataChanged != nil {
		o.OnDataChanged(index)
	}
}

func (o ObserverFuncs) ModelReset() {
	if o.OnReset != nil {
		o.OnReset()
	}
}
