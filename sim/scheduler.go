// sim/scheduler.go
package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Activity is a suspendable unit of simulation logic. The scheduler calls
// Resume each time the activity's wait expires; the activity performs its
// synchronous work, may spawn further activities, and requests its next
// wait before returning. An activity that requests nothing terminates.
type Activity interface {
	Resume(sched *Scheduler) error
}

// pendingEvent pairs a due time with the activity to resume. seq breaks
// ties between events due at the identical instant: the one scheduled
// first resumes first, which keeps replays deterministic for a fixed
// random stream.
type pendingEvent struct {
	due float64
	seq uint64
	act Activity
}

// eventQueue implements heap.Interface and orders pending events by
// (due, seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventQueue []*pendingEvent

func (eq eventQueue) Len() int { return len(eq) }
func (eq eventQueue) Less(i, j int) bool {
	if eq[i].due != eq[j].due {
		return eq[i].due < eq[j].due
	}
	return eq[i].seq < eq[j].seq
}
func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*pendingEvent))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[:n-1]
	return item
}

// Scheduler owns the simulated clock and the time-ordered queue of pending
// resumptions. Only the scheduler advances the clock; activities request
// waits and are resumed strictly sequentially, one at a time.
type Scheduler struct {
	clock float64
	seq   uint64
	queue eventQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{queue: make(eventQueue, 0)}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() float64 {
	return s.clock
}

// Spawn registers an independent activity for immediate participation: its
// first resumption is scheduled at the current clock time.
func (s *Scheduler) Spawn(act Activity) {
	s.push(s.clock, act)
}

// ScheduleTimeout suspends act until Now()+delay. A negative delay is a
// defect in the requesting activity, not user input, and aborts the run.
func (s *Scheduler) ScheduleTimeout(act Activity, delay float64) error {
	if delay < 0 {
		return fmt.Errorf("%w: negative wait duration %v", ErrSchedulingViolation, delay)
	}
	s.push(s.clock+delay, act)
	return nil
}

func (s *Scheduler) push(due float64, act Activity) {
	heap.Push(&s.queue, &pendingEvent{due: due, seq: s.seq, act: act})
	s.seq++
}

// RunUntil pops pending events in (due, seq) order, advances the clock to
// each due time, and resumes the corresponding activity. Events due at or
// before the horizon still fire; the first event due strictly after it
// ends the run, so the clock is never advanced past the horizon. Any error
// returned by an activity aborts the run immediately.
func (s *Scheduler) RunUntil(horizon float64) error {
	for len(s.queue) > 0 {
		if s.queue[0].due > horizon {
			break
		}
		next := heap.Pop(&s.queue).(*pendingEvent)
		s.clock = next.due
		logrus.Debugf("[t=%08.4f] resuming %T", s.clock, next.act)
		if err := next.act.Resume(s); err != nil {
			return err
		}
	}
	return nil
}
