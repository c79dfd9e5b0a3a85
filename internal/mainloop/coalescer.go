package mainloop

import "sync"

// Coalescer merges bursts of same-key loop tasks. At most one task per key
// is queued; when it runs it calls the latest callback posted for that key.
type Coalescer struct {
	post func(func())

	mu     sync.Mutex
	latest map[string]func()
	closed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop: NewCoalescer needs a post function")
	}
	return &Coalescer{post: post, latest: map[string]func(){}}
}

// Post records fn as the work for key and queues a task for key unless one
// is already waiting.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !queued {
		c.post(func() { c.run(key) })
	}
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.latest[key]
	delete(c.latest, key)
	closed := c.closed
	c.mu.Unlock()

	if fn != nil && !closed {
		fn()
	}
}

// Cancel drops the waiting work for key. The queued task still runs but
// finds nothing to do.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	if _, ok := c.latest[key]; ok {
		c.latest[key] = nil
	}
	c.mu.Unlock()
}

// Pending reports whether work for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest[key] != nil
}

// Destroy drops all waiting work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.closed = true
	clear(c.latest)
	c.mu.Unlock()
}
