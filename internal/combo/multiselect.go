// Package combo implements the selection state of a multi-select dropdown:
// checked items over an ordered store, coalesced refreshes, a duplicate
// policy, and formatted text/data output.
package combo

import (
	"log/slog"

	"multiselect/internal/coalesce"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/format"
	"multiselect/internal/logic"
	"multiselect/internal/selection"
)

// DefaultSelectAllText labels the select-all pseudo-item
const DefaultSelectAllText = "Select All"

// MultiSelect is a multi-select control. It is not safe for concurrent use;
// hosts must funnel every call through the goroutine that owns it.
type MultiSelect struct {
	store logic.ItemStore
	cache *selection.Cache
	co    *coalesce.Coalescer
	bus   eventbus.EventBus

	outputType    domain.Field
	displayType   domain.Field
	delim         format.Delimiter
	outputRole    domain.Role
	duplicates    bool
	selectAll     bool
	selectAllText string
	placeholder   string
	maxSelection  int
	closeOnSelect bool
	summary       format.Summary

	shownText string // display text as of the last refresh
	closed    bool
}

// Option configures a MultiSelect at construction
type Option func(*options)

type options struct {
	sched coalesce.Scheduler
	store logic.ItemStore
	bus   eventbus.EventBus
}

// WithScheduler sets the host scheduler for deferred refreshes
func WithScheduler(s coalesce.Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithStore attaches an existing item store instead of an empty one
func WithStore(s logic.ItemStore) Option {
	return func(o *options) { o.store = s }
}

// WithBus publishes events on an existing bus
func WithBus(b eventbus.EventBus) Option {
	return func(o *options) { o.bus = b }
}

// New creates a control. Without WithScheduler refreshes run immediately.
func New(opts ...Option) *MultiSelect {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = logic.NewMemoryItemStore()
	}
	if o.bus == nil {
		o.bus = eventbus.New()
	}

	m := &MultiSelect{
		cache:         selection.NewCache(),
		bus:           o.bus,
		outputType:    domain.ByData,
		displayType:   domain.ByData,
		delim:         format.DefaultDelimiter(),
		outputRole:    domain.RoleUser,
		duplicates:    true,
		selectAllText: DefaultSelectAllText,
		summary:       format.DefaultSummary(),
	}
	m.co = coalesce.New(o.sched, m.refresh)
	m.cache.OnChange(func(selection.Change) { m.co.Schedule() })
	m.store = o.store
	m.cache.Attach(o.store)
	m.shownText = m.DisplayText()
	return m
}

// SetStore replaces the backing collection. The cache detaches from the old
// store, attaches to the new one and is rebuilt by a full scan.
func (m *MultiSelect) SetStore(store logic.ItemStore) {
	if store == nil {
		store = logic.NewMemoryItemStore()
	}
	m.store = store
	m.cache.Attach(store)
	slog.Debug("Item store attached", "items", store.Len())
	m.bus.Publish(eventbus.StoreAttachedEvent{Count: store.Len()})
	m.co.Schedule()
}

// Store returns the backing collection
func (m *MultiSelect) Store() logic.ItemStore {
	return m.store
}

// Bus returns the control's event bus
func (m *MultiSelect) Bus() eventbus.EventBus {
	return m.bus
}

// OnSelectionChanged registers fn for every refresh cycle and returns an unsubscribe function
func (m *MultiSelect) OnSelectionChanged(fn func(values []any)) func() {
	return m.bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SelectionChangedEvent); ok {
			fn(ev.Values)
		}
	})
}

// Subscribe registers handler for an event type
func (m *MultiSelect) Subscribe(t eventbus.EventType, handler eventbus.EventHandler) func() {
	return m.bus.Subscribe(t, handler)
}

// BeginUpdate opens a batch; refreshes are held until the outermost EndUpdate
func (m *MultiSelect) BeginUpdate() {
	m.co.Begin()
}

// EndUpdate closes a batch. The outermost call runs one refresh synchronously.
func (m *MultiSelect) EndUpdate() {
	m.co.End()
}

// IsUpdatePending reports whether a deferred refresh is queued
func (m *MultiSelect) IsUpdatePending() bool {
	return m.co.Pending()
}

// Close tears the control down. Refreshes still queued on the scheduler become no-ops.
func (m *MultiSelect) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.co.Close()
	m.cache.Detach()
	m.bus.Close()
}

func (m *MultiSelect) refresh() {
	m.shownText = m.DisplayText()
	values := m.CurrentData()
	state := m.SelectAllState()
	slog.Debug("Selection refreshed", "checked", m.cache.Len(), "state", state.String())
	m.bus.Publish(eventbus.SelectionChangedEvent{Values: values, State: state})
}

// updateText refreshes the shown text without emitting a notification
func (m *MultiSelect) updateText() {
	m.shownText = m.DisplayText()
}

// batch runs fn inside an internal Begin/End pair
func (m *MultiSelect) batch(fn func()) {
	m.co.Begin()
	defer m.co.End()
	fn()
}

func (m *MultiSelect) checkIndex(index int) error {
	if n := m.store.Len(); index < 0 || index >= n {
		return &IndexError{Index: index, Len: n}
	}
	return nil
}
