package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged      EventType = "SelectionChanged"
	EventSelectionLimitReached EventType = "SelectionLimitReached"
	EventItemSkipped           EventType = "ItemSkipped"
	EventStoreAttached         EventType = "StoreAttached"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted once per refresh cycle
type SelectionChangedEvent struct {
	Values []any // CurrentData() at the time of the refresh
	State  CheckState
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionLimitReachedEvent is emitted when an interactive toggle would exceed the maximum
type SelectionLimitReachedEvent struct {
	Index int
	Limit int
}

func (e SelectionLimitReachedEvent) Type() EventType { return EventSelectionLimitReached }

// ItemSkippedEvent is emitted when the duplicate policy rejects an insertion
type ItemSkippedEvent struct {
	Text string
	Data any
}

func (e ItemSkippedEvent) Type() EventType { return EventItemSkipped }

// StoreAttachedEvent is emitted when a backing store replaces the previous one
type StoreAttachedEvent struct {
	Count int
}

func (e StoreAttachedEvent) Type() EventType { return EventStoreAttached }
