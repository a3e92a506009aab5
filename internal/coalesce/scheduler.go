package coalesce

// Scheduler runs a task once after the current synchronous work
type Scheduler interface {
	Post(task func())
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(task func())

func (f SchedulerFunc) Post(task func()) { f(task) }

// Immediate runs posted tasks synchronously
type Immediate struct{}

func (Immediate) Post(task func()) { task() }

// Queue holds posted tasks until Drain is called
type Queue struct {
	tasks []func()
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Post(task func()) {
	q.tasks = append(q.tasks, task)
}

// Len returns the number of queued tasks
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Drain runs queued tasks in posting order, including tasks posted while
// draining, and returns how many ran
func (q *Queue) Drain() int {
	n := 0
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		task()
		n++
	}
	return n
}
