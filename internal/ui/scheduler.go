package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/coalesce"
)

// TeaScheduler defers the control's refreshes to the next Update. Posted
// tasks wait in a queue; Cmd hands bubbletea a flushMsg that drains it.
// Tasks therefore always run on the program's Update goroutine.
type TeaScheduler struct {
	queue    *coalesce.Queue
	inFlight bool
}

// NewTeaScheduler creates an empty scheduler
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{queue: coalesce.NewQueue()}
}

func (s *TeaScheduler) Post(task func()) {
	s.queue.Post(task)
}

// Pending returns the number of queued tasks
func (s *TeaScheduler) Pending() int {
	return s.queue.Len()
}

// Cmd returns a command delivering a flushMsg, or nil when nothing is queued
// or a flush is already on its way
func (s *TeaScheduler) Cmd() tea.Cmd {
	if s.inFlight || s.queue.Len() == 0 {
		return nil
	}
	s.inFlight = true
	return func() tea.Msg { return flushMsg{} }
}

// Flush runs every queued task
func (s *TeaScheduler) Flush() int {
	s.inFlight = false
	return s.queue.Drain()
}
