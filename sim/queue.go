// Implements the ReadyQueue, the FIFO ready set used by FCFS, RR and RFCSC.
// Tasks are enqueued on arrival and re-enqueued at the tail when preempted.

package sim

import (
	"strings"
)

// ReadyQueue represents a FIFO queue of tasks waiting for the processor.
type ReadyQueue struct {
	queue []*Task
}

// Enqueue adds a task to the back of the queue.
func (rq *ReadyQueue) Enqueue(t *Task) {
	if t == nil {
		panic("Enqueue: task must not be nil")
	}
	t.State = StateReady
	rq.queue = append(rq.queue, t)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range rq.queue {
		sb.WriteString(t.Name)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of tasks in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the task at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Task {
	return rq.queue
}

// Dequeue removes the task at the front of the queue.
// Dequeuing from an empty queue is a policy bug and panics.
func (rq *ReadyQueue) Dequeue() *Task {
	if len(rq.queue) == 0 {
		panic("Dequeue: ready queue is empty")
	}
	t := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return t
}

// RemoveIf drops every task for which fn returns true and returns them in queue order.
// Survivors keep their relative order.
func (rq *ReadyQueue) RemoveIf(fn func(*Task) bool) []*Task {
	if fn == nil {
		panic("RemoveIf: fn must not be nil")
	}
	var removed []*Task
	kept := rq.queue[:0]
	for _, t := range rq.queue {
		if fn(t) {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(rq.queue); i++ {
		rq.queue[i] = nil
	}
	rq.queue = kept
	return removed
}
