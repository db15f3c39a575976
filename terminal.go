package easymark

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"

	"pkt.systems/easymark/internal/palette"
)

const (
	ansiReset        = palette.Reset
	quoteBar         = "│"
	ruleRune         = "─"
	defaultRuleWidth = 40
	minContentWidth  = 8
)

// TerminalDisplay writes lines to a terminal as ANSI text, word-wrapped to
// a fixed width. A width of zero disables wrapping.
type TerminalDisplay struct {
	w      *bufio.Writer
	width  int
	styles Styles
	cfg    renderConfig
	line   strings.Builder
}

// NewTerminalDisplay returns a Display writing to w.
func NewTerminalDisplay(w io.Writer, width int, theme Theme, opts ...RenderOption) *TerminalDisplay {
	cfg := buildRenderConfig(opts)
	if theme == nil {
		theme = namedTheme("", cfg.profile)
	}
	return newTerminalDisplay(w, width, theme, cfg)
}

func newTerminalDisplay(w io.Writer, width int, theme Theme, cfg renderConfig) *TerminalDisplay {
	if width < 0 {
		width = 0
	}
	return &TerminalDisplay{
		w:      bufio.NewWriter(w),
		width:  width,
		styles: theme.Styles(),
		cfg:    cfg,
	}
}

// Flush writes any buffered output.
func (d *TerminalDisplay) Flush() error {
	return d.w.Flush()
}

// WriteLine renders one line, which may take several output rows.
func (d *TerminalDisplay) WriteLine(l Line) error {
	if l.Separator {
		return d.writeRule()
	}
	lead, hang, prefixWidth := d.prefixes(l)
	avail := 0
	if d.width > 0 {
		avail = max(d.width-prefixWidth, minContentWidth)
	}

	first := true
	writeRow := func(row string) error {
		p := hang
		if first {
			p = lead
			first = false
		}
		_, err := d.w.WriteString(p + row + "\n")
		return err
	}

	var words []atom
	flushParagraph := func(force bool) error {
		if len(words) == 0 && !force {
			return nil
		}
		rows := d.layout(words, avail)
		words = words[:0]
		if len(rows) == 0 {
			rows = []string{""}
		}
		for _, row := range rows {
			if err := writeRow(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, it := range l.Items {
		switch it.Kind {
		case ItemText:
			words = appendAtoms(words, it.Text, d.sgr(it.Style), "")
		case ItemHyperlink:
			words = d.appendLink(words, it, avail)
		case ItemCodeBlock:
			if err := flushParagraph(false); err != nil {
				return err
			}
			for _, row := range d.codeRows(it) {
				if err := writeRow(row); err != nil {
					return err
				}
			}
		}
	}
	return flushParagraph(first)
}

func (d *TerminalDisplay) writeRule() error {
	n := d.width
	if n <= 0 {
		n = defaultRuleWidth
	}
	_, err := d.w.WriteString(d.paint(d.styles.Rule.Prefix, strings.Repeat(ruleRune, n)) + "\n")
	return err
}

// prefixes returns the styled prefix for the first row, the prefix for
// continuation rows and their shared printable width.
func (d *TerminalDisplay) prefixes(l Line) (lead, hang string, width int) {
	var bars strings.Builder
	for i := 0; i < l.QuoteDepth; i++ {
		bars.WriteString(d.paint(d.styles.Quote.Prefix, quoteBar))
		bars.WriteByte(' ')
	}
	width = 2*l.QuoteDepth + l.Indent
	indent := strings.Repeat(" ", l.Indent)
	lead = bars.String() + indent
	hang = lead
	if l.Marker != "" {
		markerWidth := ansi.PrintableRuneWidth(l.Marker) + 1
		lead += d.paint(d.styles.ListMarker.Prefix, l.Marker) + " "
		hang += strings.Repeat(" ", markerWidth)
		width += markerWidth
	}
	return lead, hang, width
}

func (d *TerminalDisplay) sgr(s Style) string {
	return styleSGR(d.styles, s)
}

// styleSGR maps markup flags to a terminal prefix. Small and raised text
// share the small look; on a heading the two cancel out. Strong wins over
// quoted.
func styleSGR(st Styles, s Style) string {
	var b strings.Builder
	b.WriteString(st.Text.Prefix)
	small := s.Small || s.Raised
	if s.Heading && !small {
		b.WriteString(st.Heading.Prefix)
	}
	if small && !s.Heading {
		b.WriteString(st.Small.Prefix)
	}
	if s.Code {
		b.WriteString(st.Code.Prefix)
	}
	if s.Strong {
		b.WriteString(st.Strong.Prefix)
	} else if s.Quoted {
		b.WriteString(st.Quote.Prefix)
	}
	if s.Underline {
		b.WriteString(st.Underline.Prefix)
	}
	if s.Strikethrough {
		b.WriteString(st.Strikethrough.Prefix)
	}
	if s.Italics {
		b.WriteString(st.Italics.Prefix)
	}
	if s.Raised {
		b.WriteString(st.Raised.Prefix)
	}
	return b.String()
}

func (d *TerminalDisplay) paint(prefix, text string) string {
	if prefix == "" {
		return text
	}
	return prefix + text + ansiReset
}

func (d *TerminalDisplay) appendLink(words []atom, it Item, avail int) []atom {
	title := it.Text
	if title == "" {
		title = it.URL
	}
	prefix := d.sgr(it.Style) + d.styles.LinkText.Prefix
	if d.cfg.osc8 {
		return appendAtoms(words, title, prefix, it.URL)
	}
	words = appendAtoms(words, title, prefix, "")
	if it.URL == "" || it.URL == title {
		return words
	}
	url := fitURL(it.URL, avail-2)
	words = append(words, atom{text: " ", space: true})
	return appendAtoms(words, "("+url+")", d.styles.LinkURL.Prefix, "")
}

// codeRows renders a code block padded to a uniform width.
func (d *TerminalDisplay) codeRows(it Item) []string {
	styleName := d.styles.CodeStyle
	if d.cfg.codeStyle != "" {
		styleName = d.cfg.codeStyle
	}
	if !d.cfg.codeHighlight {
		styleName = ""
	}
	base := d.styles.CodeBlock
	lines := highlightCode(it.Text, it.Language, styleName, base, d.styles.Profile)

	widths := make([]int, len(lines))
	blockWidth := 0
	for i, segs := range lines {
		for _, seg := range segs {
			widths[i] += runewidth.StringWidth(seg.text)
		}
		blockWidth = max(blockWidth, widths[i])
	}

	rows := make([]string, 0, len(lines))
	for i, segs := range lines {
		var b strings.Builder
		styled := base.Prefix != ""
		b.WriteString(base.Prefix + " ")
		for _, seg := range segs {
			if seg.prefix != "" && seg.prefix != base.Prefix {
				b.WriteString(ansiReset + seg.prefix)
				styled = true
			}
			b.WriteString(seg.text)
		}
		if styled {
			b.WriteString(ansiReset + base.Prefix)
		}
		b.WriteString(strings.Repeat(" ", blockWidth-widths[i]+1))
		if styled {
			b.WriteString(ansiReset)
		}
		rows = append(rows, b.String())
	}
	return rows
}

// atom is a run of text that shares one style. Words are maximal runs of
// non-space atoms.
type atom struct {
	text   string
	prefix string
	link   string
	space  bool
}

// appendAtoms splits text on spaces into word and space atoms. Tabs are
// expanded first so every atom measures by its printable width.
func appendAtoms(atoms []atom, text, prefix, link string) []atom {
	text = expandTabs(text, codeTabWidth)
	for text != "" {
		i := strings.IndexByte(text, ' ')
		switch {
		case i < 0:
			return append(atoms, atom{text: text, prefix: prefix, link: link})
		case i == 0:
			n := len(text) - len(strings.TrimLeft(text, " "))
			atoms = append(atoms, atom{text: text[:n], prefix: prefix, space: true})
			text = text[n:]
		default:
			atoms = append(atoms, atom{text: text[:i], prefix: prefix, link: link})
			text = text[i:]
		}
	}
	return atoms
}

func atomsWidth(atoms []atom) int {
	n := 0
	for _, a := range atoms {
		n += ansi.PrintableRuneWidth(a.text)
	}
	return n
}

// layout fills rows greedily. Spaces at a break are dropped. With a zero
// limit everything stays on one row.
func (d *TerminalDisplay) layout(atoms []atom, limit int) []string {
	var (
		rows    []string
		row     []atom
		rowW    int
		pending []atom
	)
	breakRow := func() {
		rows = append(rows, d.renderRow(row))
		row = nil
		rowW = 0
		pending = nil
	}
	place := func(word []atom) {
		w := atomsWidth(word)
		spaceW := atomsWidth(pending)
		if limit > 0 && rowW > 0 && rowW+spaceW+w > limit {
			breakRow()
			spaceW = 0
		}
		row = append(row, pending...)
		pending = nil
		if limit > 0 && w > limit && d.cfg.softWrap {
			for _, chunk := range splitWord(word, limit) {
				if rowW > 0 {
					breakRow()
				}
				row = append(row, chunk...)
				rowW = atomsWidth(chunk)
			}
			return
		}
		row = append(row, word...)
		rowW += spaceW + w
	}

	for i := 0; i < len(atoms); {
		if atoms[i].space {
			pending = append(pending, atoms[i])
			i++
			continue
		}
		j := i
		for j < len(atoms) && !atoms[j].space {
			j++
		}
		place(atoms[i:j])
		i = j
	}
	if len(row) > 0 || len(rows) == 0 {
		rows = append(rows, d.renderRow(row))
	}
	return rows
}

// splitWord hard-breaks an overlong word into chunks of at most limit
// columns, keeping each atom's style.
func splitWord(word []atom, limit int) [][]atom {
	var (
		chunks [][]atom
		cur    []atom
		curW   int
	)
	for _, a := range word {
		rest := a.text
		for rest != "" {
			room := limit - curW
			if room <= 0 {
				chunks = append(chunks, cur)
				cur, curW = nil, 0
				room = limit
			}
			n := prefixFitting(rest, room)
			if n == 0 {
				if curW > 0 {
					chunks = append(chunks, cur)
					cur, curW = nil, 0
					continue
				}
				_, n = utf8.DecodeRuneInString(rest)
			}
			piece := rest[:n]
			cur = append(cur, atom{text: piece, prefix: a.prefix, link: a.link})
			curW += runewidth.StringWidth(piece)
			rest = rest[n:]
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks
}

// prefixFitting returns the byte length of the longest prefix of s that
// fits in room columns.
func prefixFitting(s string, room int) int {
	w := 0
	for i, r := range s {
		w += runewidth.RuneWidth(r)
		if w > room {
			return i
		}
	}
	return len(s)
}

// renderRow writes atoms with minimal style switches and a closing reset.
func (d *TerminalDisplay) renderRow(row []atom) string {
	d.line.Reset()
	active := ""
	for _, a := range row {
		if a.prefix != active {
			if active != "" {
				d.line.WriteString(ansiReset)
			}
			active = a.prefix
			d.line.WriteString(active)
		}
		if a.link != "" {
			d.line.WriteString(osc8Link(a.link, a.text))
			continue
		}
		d.line.WriteString(a.text)
	}
	if active != "" {
		d.line.WriteString(ansiReset)
	}
	return d.line.String()
}
