// Package engine is the virtual-time scheduler and entity lifecycle:
// the cooperative run loop, the Resource pool, the per-entity statistics
// record, and the four node behaviors (Source/Process/Decision/Exit)
// dispatched from it. It uses a container/heap event queue ordering
// events by (time, insertion order) with a single-threaded Run loop.
package engine

import "container/heap"

// task is a scheduled continuation: the scheduler invokes fn once Clock
// reaches time, in the order tasks were scheduled among ties.
type task struct {
	time int64
	seq  int64
	fn   func(s *Scheduler)
}

// taskQueue implements heap.Interface, ordering by (time, seq) so that
// two tasks scheduled for the same virtual time fire in submission order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Scheduler is the single virtual clock driving a run. There is no
// preemption and no parallelism: at any instant exactly one task runs.
type Scheduler struct {
	Clock   int64
	Horizon int64

	queue   taskQueue
	nextSeq int64
}

// NewScheduler returns a Scheduler whose clock starts at 0 and which
// terminates the run once the next dispatched task's time is >= horizon.
func NewScheduler(horizon int64) *Scheduler {
	return &Scheduler{Horizon: horizon}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() int64 { return s.Clock }

// At schedules fn to run when the clock reaches t. Scheduling order among
// tasks sharing the same t is preserved via an insertion sequence, not t
// itself, so callers never need to fudge timestamps to order same-time
// events.
func (s *Scheduler) At(t int64, fn func(s *Scheduler)) {
	heap.Push(&s.queue, &task{time: t, seq: s.nextSeq, fn: fn})
	s.nextSeq++
}

// After schedules fn to run d ticks from now. d must be non-negative.
func (s *Scheduler) After(d int64, fn func(s *Scheduler)) {
	s.At(s.Clock+d, fn)
}

// Run drains the task queue. A task whose time is >= Horizon is never
// executed — the run terminates there and every further task (including
// that one) is abandoned, discarding any in-flight entity's partial
// statistics. The very first emission of every Source happens before Run
// is called (see Scheduler.Kickoff) so that it fires at t=0
// unconditionally even when Horizon is 0.
func (s *Scheduler) Run() {
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.time >= s.Horizon {
			return
		}
		t := heap.Pop(&s.queue).(*task)
		s.Clock = t.time
		t.fn(s)
	}
}

// Kickoff invokes fn immediately, before Run's dispatch loop starts and
// without going through the horizon check. Every Source's first arrival
// is emitted this way, in network declaration order, so that "the first
// entity is emitted at t=0" holds even when Horizon is 0.
func (s *Scheduler) Kickoff(fn func(s *Scheduler)) {
	fn(s)
}
