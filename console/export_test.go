package console

// GetCell exposes a single cell by virtual coordinates for tests.
func (c *Console) GetCell(x, y int) Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cellAt(x, y)
}

// Top exposes the current scrollback offset for tests.
func (c *Console) Top() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.top
}

// Offset exposes the current ring rotation for tests.
func (c *Console) Offset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}
