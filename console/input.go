package console

// AppendInput appends code points to the FIFO type-ahead queue, to be
// consumed later by the outbound path (the Worker's output task).
func (c *Console) AppendInput(chars []rune) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = append(c.input, chars...)
}

// HasInput reports whether the type-ahead queue has data waiting.
func (c *Console) HasInput() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.input) > 0
}

// ReadInput drains up to cap code points from the type-ahead queue.
func (c *Console) ReadInput(cap int) []rune {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cap > len(c.input) {
		cap = len(c.input)
	}
	out := append([]rune(nil), c.input[:cap]...)
	c.input = c.input[cap:]
	return out
}
