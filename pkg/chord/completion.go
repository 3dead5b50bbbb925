package chord

import (
	"context"
	"sync"
)

// Completion signals that the CDP's transport layer accepted a tracking
// call. Track and every Track* builder return one; it resolves when the CDP
// invokes its done callback. The library sets no timeout: a CDP that never
// calls back leaves the completion pending indefinitely, so bound waits
// with Wait and a context.
type Completion struct {
	done chan struct{}
	once sync.Once
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// resolvedCompletion is returned by no-op dispatches.
var resolvedCompletion = func() *Completion {
	c := newCompletion()
	c.resolve()
	return c
}()

func (c *Completion) resolve() {
	c.once.Do(func() { close(c.done) })
}

// Done returns a channel that is closed when the completion resolves.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Resolved reports whether the completion has already resolved.
func (c *Completion) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the completion resolves or ctx is done, returning
// ctx.Err() in the latter case.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
