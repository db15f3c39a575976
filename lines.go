package easymark

const bulletMarker = "•"

// Line is one visual line: the structure collected from the line's leading
// markers plus its inline items.
type Line struct {
	Indent     int
	QuoteDepth int
	// Marker is the list label, "•" for bullets or "<digits>." for numbered
	// points; empty when the line is not a list item.
	Marker string
	// Items holds Text, Hyperlink and CodeBlock items in order.
	Items []Item
	// Separator marks a horizontal rule. Such a line has no other content.
	Separator bool
}

// Blank reports whether the line would render as nothing.
func (l Line) Blank() bool {
	return !l.Separator && len(l.Items) == 0 && l.Marker == "" && l.QuoteDepth == 0
}

// LineReducer groups items into lines and hands them to a Display.
//
// Quote depth is counted here, one level per QuoteIndent, not by the
// Tokenizer.
type LineReducer struct {
	out Display
	cur Line
}

// NewLineReducer returns a reducer writing to out.
func NewLineReducer(out Display) *LineReducer {
	return &LineReducer{out: out}
}

// Add folds one item into the current line, flushing when the line ends.
func (r *LineReducer) Add(it Item) error {
	switch it.Kind {
	case ItemIndentation:
		r.cur.Indent = it.Count
	case ItemQuoteIndent:
		r.cur.QuoteDepth++
	case ItemBulletPoint:
		r.cur.Marker = bulletMarker
	case ItemNumberedPoint:
		r.cur.Marker = it.Text + "."
	case ItemNewline:
		return r.flush()
	case ItemSeparator:
		if !r.cur.Blank() {
			if err := r.flush(); err != nil {
				return err
			}
		}
		r.cur = Line{}
		return r.out.WriteLine(Line{Separator: true})
	default:
		if it.Kind.Inline() {
			r.cur.Items = append(r.cur.Items, it)
		}
	}
	return nil
}

// Close writes a trailing unterminated line, if it has content, and flushes
// the display.
func (r *LineReducer) Close() error {
	if !r.cur.Blank() {
		if err := r.flush(); err != nil {
			return err
		}
	}
	return r.out.Flush()
}

func (r *LineReducer) flush() error {
	l := r.cur
	r.cur = Line{}
	return r.out.WriteLine(l)
}

// ReduceLines tokenizes src and returns its lines.
func ReduceLines(src string) []Line {
	c := &lineCollector{}
	r := NewLineReducer(c)
	for it := range Items(src) {
		_ = r.Add(it)
	}
	_ = r.Close()
	return c.lines
}
