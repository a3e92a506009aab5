package logic

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

type recorder struct {
	events []string
}

func (r *recorder) observer() Observer {
	return ObserverFuncs{
		OnInserted:     func(first, count int) { r.events = append(r.events, fmt.Sprintf("insert %d+%d", first, count)) },
		OnRemoved:      func(first, count int) { r.events = append(r.events, fmt.Sprintf("remove %d+%d", first, count)) },
		OnCheckChanged: func(i int, c bool) { r.events = append(r.events, fmt.Sprintf("check %d %v", i, c)) },
		OnDataChanged:  func(i int) { r.events = append(r.events, fmt.Sprintf("data %d", i)) },
		OnReset:        func() { r.events = append(r.events, "reset") },
	}
}

func TestStoreMutationsNotifyObservers(t *testing.T) {
	t.Parallel()
	s := NewMemoryItemStore(domain.NewItem("a", nil))
	rec := &recorder{}
	s.Observe(rec.observer())

	require.Equal(t, 1, s.Append(domain.NewItem("c", nil)))
	require.NoError(t, s.Insert(1, domain.NewItem("b", nil)))
	require.NoError(t, s.SetChecked(2, true))
	require.NoError(t, s.SetChecked(2, true))
	require.NoError(t, s.SetEnabled(0, false))
	require.NoError(t, s.SetData(1, domain.RoleUser, 42))
	require.NoError(t, s.Remove(0))
	s.Reset(nil)

	require.Equal(t, []string{
		"insert 1+1",
		"insert 1+1",
		"check 2 true",
		"data 0",
		"data 1",
		"remove 0+1",
		"reset",
	}, rec.events, "unchanged check flag is not reported")
	require.Zero(t, s.Len())
}

func TestStoreOrderAndValues(t *testing.T) {
	t.Parallel()
	s := NewMemoryItemStore()
	s.Append(domain.NewItem("a", "A"))
	s.Append(domain.NewItem("c", nil))
	require.NoError(t, s.Insert(1, domain.NewItem("b", 2)))

	var texts []string
	for _, it := range s.Items() {
		texts = append(texts, it.Text)
	}
	require.Equal(t, []string{"a", "b", "c"}, texts)

	it, ok := s.Item(2)
	require.True(t, ok)
	require.Equal(t, "c", it.Value(domain.RoleUser), "nil data falls back to text")
	require.Equal(t, "c", it.Value(domain.RoleDisplay))

	require.NoError(t, s.SetData(2, domain.RoleDisplay, "cc"))
	it, _ = s.Item(2)
	require.Equal(t, "cc", it.Text)

	_, ok = s.Item(3)
	require.False(t, ok)
}

func TestStoreOutOfRange(t *testing.T) {
	t.Parallel()
	s := NewMemoryItemStore(domain.NewItem("a", nil))
	rev := s.Revision()

	require.ErrorIs(t, s.Insert(5, domain.NewItem("x", nil)), ErrIndexOutOfRange)
	require.ErrorIs(t, s.Remove(-1), ErrIndexOutOfRange)
	require.ErrorIs(t, s.SetChecked(1, true), ErrIndexOutOfRange)
	require.ErrorIs(t, s.SetEnabled(1, true), ErrIndexOutOfRange)
	require.ErrorIs(t, s.SetData(1, domain.RoleUser, 1), ErrIndexOutOfRange)
	require.Equal(t, rev, s.Revision())
}

func TestStoreReturnsCopies(t *testing.T) {
	t.Parallel()
	s := NewMemoryItemStore(domain.NewItem("a", "A"))

	it, _ := s.Item(0)
	it.Data[domain.RoleUser] = "changed"
	items := s.Items()
	items[0].Text = "changed"

	got, _ := s.Item(0)
	require.Equal(t, "a", got.Text)
	require.Equal(t, "A", got.Value(domain.RoleUser))
}

func TestDetachObserver(t *testing.T) {
	t.Parallel()
	s := NewMemoryItemStore()
	first, second := &recorder{}, &recorder{}
	detach := s.Observe(first.observer())
	s.Observe(second.observer())

	s.Append(domain.NewItem("a", nil))
	detach()
	s.Append(domain.NewItem("b", nil))

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 2)
}
