package easymark

// Display receives lines from a LineReducer.
type Display interface {
	WriteLine(Line) error
	Flush() error
}

// lineCollector is a Display that keeps every line in memory.
type lineCollector struct {
	lines []Line
}

func (c *lineCollector) WriteLine(l Line) error {
	c.lines = append(c.lines, l)
	return nil
}

func (c *lineCollector) Flush() error { return nil }
