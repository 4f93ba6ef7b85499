// Implements the ReadyQueue, which holds all processes eligible to run.
// PIDs are enqueued at creation (fork) and at startup (init).

package kernel

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of PIDs awaiting dispatch. Child processes
// carry a distinct priority marker in their PCB, but dequeue order is plain
// insertion order; the marker does not reorder the queue.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a PID to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(pid int) {
	rq.queue = append(rq.queue, pid)
}

// Dequeue removes and returns the PID at the front of the queue.
// Returns -1 if the queue is empty.
func (rq *ReadyQueue) Dequeue() int {
	if len(rq.queue) == 0 {
		return -1
	}
	pid := rq.queue[0]
	rq.queue = rq.queue[1:]
	return pid
}

// Peek returns the PID at the front of the queue without removing it.
// Returns -1 if the queue is empty.
func (rq *ReadyQueue) Peek() int {
	if len(rq.queue) == 0 {
		return -1
	}
	return rq.queue[0]
}

// Remove deletes the first occurrence of pid from the queue.
// Used when a process terminates while still waiting to run.
func (rq *ReadyQueue) Remove(pid int) {
	for i, p := range rq.queue {
		if p == pid {
			rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
			return
		}
	}
}

// Len returns the number of PIDs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []int {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, pid := range rq.queue {
		sb.WriteString(fmt.Sprint(pid))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
