package mainloop

import (
	"context"
	"testing"
	"time"
)

func TestQueueRunPendingRunsNestedPosts(t *testing.T) {
	q := NewQueue()
	var order []int

	q.Post(func() {
		order = append(order, 1)
		q.Post(func() { order = append(order, 3) })
	})
	q.Post(func() { order = append(order, 2) })

	if n := q.RunPending(); n != 3 {
		t.Fatalf("expected 3 tasks to run, got %d", n)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("unexpected order %v", order)
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue")
	}
}

func TestQueueRunNextWaitsForOffLoopPost(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{})
	ran := false

	go func() {
		defer close(done)
		q.Post(func() { ran = true })
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if !q.RunNext(ctx) {
		t.Fatalf("expected a task to run")
	}
	<-done
	if !ran {
		t.Fatalf("expected posted task to run on the caller goroutine")
	}
}

func TestQueueRunNextStopsOnContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if q.RunNext(ctx) {
		t.Fatalf("expected RunNext to give up on a cancelled context")
	}
}

func TestQueueDropsPostsAfterClose(t *testing.T) {
	q := NewQueue()
	q.Post(func() {})
	q.Close()
	q.Post(func() {})

	if q.Len() != 1 {
		t.Fatalf("expected only the task posted before close, got %d", q.Len())
	}
	if err := q.Run(context.Background()); err != nil {
		t.Fatalf("expected clean stop after close, got %v", err)
	}
}
