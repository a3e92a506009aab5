package coalesce

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newCounting(s Scheduler) (*Coalescer, *int) {
	n := 0
	return New(s, func() { n++ }), &n
}

func TestDeferredMutationsCoalesce(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Schedule()
	c.Schedule()
	c.Schedule()
	require.True(t, c.Pending())
	require.Equal(t, 1, q.Len(), "one task per burst")
	require.Zero(t, *n)

	require.Equal(t, 1, q.Drain())
	require.Equal(t, 1, *n)
	require.False(t, c.Pending())

	c.Schedule()
	q.Drain()
	require.Equal(t, 2, *n)
	require.Equal(t, uint64(2), c.Cycles())
}

func TestBatchRefreshesOnceAtOutermostEnd(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Begin()
	c.Schedule()
	c.Begin()
	c.Schedule()
	c.End()
	require.Zero(t, *n)
	require.Equal(t, 1, c.Depth())
	c.End()
	require.Equal(t, 1, *n)
	require.Zero(t, q.Len(), "batched mutations never post")

	c.End()
	require.Equal(t, 1, *n, "unmatched End is ignored")
	require.Zero(t, c.Depth())

	c.Begin()
	c.End()
	require.Equal(t, 1, *n, "a batch without mutations does not refresh")
	require.False(t, c.Dirty())
}

func TestScheduleInsideBatchMarksDirty(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Begin()
	require.False(t, c.Dirty())
	c.Schedule()
	require.True(t, c.Dirty())
	require.False(t, c.Pending(), "batched mutations do not post")
	c.End()
	require.Equal(t, 1, *n)
	require.False(t, c.Dirty())

	c.Begin()
	c.Begin()
	c.End()
	c.End()
	require.Equal(t, 1, *n, "clean nested batches stay silent")
}

func TestBatchAbsorbsPendingRefresh(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Schedule()
	c.Begin()
	c.Schedule()
	c.End()
	require.Equal(t, 1, *n)

	q.Drain()
	require.Equal(t, 1, *n, "queued task finds nothing to do")
}

func TestPostedTaskInsideBatchDefersToEnd(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Schedule()
	c.Begin()
	q.Drain()
	require.Zero(t, *n)
	c.End()
	require.Equal(t, 1, *n)
}

func TestDisabledRefreshesImmediately(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Schedule()
	c.SetEnabled(false)
	require.Equal(t, 1, *n, "disabling flushes the pending refresh")
	require.False(t, c.Enabled())

	c.Schedule()
	c.Schedule()
	require.Equal(t, 3, *n)

	q.Drain()
	require.Equal(t, 3, *n)
}

func TestReentrantScheduleReruns(t *testing.T) {
	t.Parallel()
	var c *Coalescer
	n := 0
	c = New(nil, func() {
		n++
		if n == 1 {
			c.SetEnabled(false)
			c.Schedule()
		}
	})

	c.Begin()
	c.Schedule()
	c.End()
	require.Equal(t, 2, n, "a mutation during refresh runs one more cycle")
}

func TestClose(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	c, n := newCounting(q)

	c.Schedule()
	c.Close()
	q.Drain()
	c.Schedule()
	c.Begin()
	c.End()
	require.Zero(t, *n)
	require.Zero(t, q.Len())
}

func TestImmediateAndFuncSchedulers(t *testing.T) {
	t.Parallel()
	c, n := newCounting(nil)
	c.Schedule()
	require.Equal(t, 1, *n)

	var posted []func()
	c2, n2 := newCounting(SchedulerFunc(func(task func()) { posted = append(posted, task) }))
	c2.Schedule()
	require.Len(t, posted, 1)
	posted[0]()
	require.Equal(t, 1, *n2)
}

func TestQueueDrainsTasksPostedWhileDraining(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	var order []int
	q.Post(func() {
		order = append(order, 1)
		q.Post(func() { order = append(order, 3) })
	})
	q.Post(func() { order = append(order, 2) })

	require.Equal(t, 3, q.Drain())
	require.Equal(t, []int{1, 2, 3}, order)
	require.Zero(t, q.Len())
}
