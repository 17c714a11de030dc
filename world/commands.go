package world

// Commands buffers work that must run after every system of a frame has
// executed, such as immediate-mode UI calls.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a function to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush runs deferred functions in the order they were queued and resets
// the buffer.
func (c *Commands) Flush() {
	for _, fn := range c.defers {
		fn()
	}
	c.defers = c.defers[:0]
}
