// Package mainloop provides the single-threaded task queue every scene
// mutation runs on. Off-loop work (query execution, library panel fetches,
// variable option loads) posts its result here instead of touching the
// scene graph directly.
package mainloop

import (
	"context"
	"sync"
)

// Queue is a FIFO of loop tasks. Post is safe from any goroutine; tasks
// only ever run on the goroutine that calls RunPending, RunNext or Run.
type Queue struct {
	mu     sync.Mutex
	tasks  []func()
	wake   chan struct{}
	closed bool
}

func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Post schedules fn. Tasks posted after Close are dropped.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return nil, false
	}
	fn := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	return fn, true
}

// RunPending runs queued tasks, including tasks they post, until the queue
// is empty. It returns the number of tasks run.
func (q *Queue) RunPending() int {
	n := 0
	for {
		fn, ok := q.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// RunNext waits for one task and runs it. It returns false when ctx ends
// first or the queue is closed and empty.
func (q *Queue) RunNext(ctx context.Context) bool {
	for {
		if fn, ok := q.pop(); ok {
			fn()
			return true
		}
		q.mu.Lock()
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-q.wake:
		}
	}
}

// Run processes tasks until ctx is done or the queue is closed.
func (q *Queue) Run(ctx context.Context) error {
	for q.RunNext(ctx) {
	}
	return ctx.Err()
}

// Close stops accepting tasks. Already queued tasks can still be drained.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}
