package easymark

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// specialChars stops a plain text run.
const specialChars = "*`~_/$^\\<[\n"

// Tokenizer turns EasyMark text into Items.
//
// It scans forward only. The one exception is bounded to the current line:
// inline code and links search the rest of the line for their closing
// delimiter and fall back to plain text when it is missing.
type Tokenizer struct {
	src         string
	pos         int
	mark        int
	startOfLine bool
	style       Style
}

// NewTokenizer returns a Tokenizer positioned at the start of src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src, startOfLine: true}
}

// Tokenize returns every item of src.
func Tokenize(src string) []Item {
	var items []Item
	t := NewTokenizer(src)
	for {
		it, ok := t.Next()
		if !ok {
			return items
		}
		items = append(items, it)
	}
}

// Items returns a sequence over the items of src. Each iteration starts a
// fresh Tokenizer.
func Items(src string) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		NewTokenizer(src).All()(yield)
	}
}

// All returns a sequence over the items not yet produced by t.
func (t *Tokenizer) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			it, ok := t.Next()
			if !ok || !yield(it) {
				return
			}
		}
	}
}

// Offset returns the number of input bytes consumed so far.
func (t *Tokenizer) Offset() int {
	return t.pos
}

// Next returns the next item, or false once the input is exhausted.
func (t *Tokenizer) Next() (Item, bool) {
	for {
		s := t.src[t.pos:]
		if s == "" {
			return Item{}, false
		}

		if s[0] == '\n' {
			t.pos++
			t.startOfLine = true
			t.style = Style{}
			return t.emit(Item{Kind: ItemNewline, At: t.pos - 1}), true
		}

		if s[0] == '\\' && len(s) >= 2 {
			if s[1] == '\n' {
				// Line continuation.
				t.pos += 2
				continue
			}
			_, size := utf8.DecodeRuneInString(s[1:])
			at := t.pos + 1
			t.pos += 1 + size
			t.startOfLine = false
			return t.emit(Item{Kind: ItemText, Style: t.style, Text: s[1 : 1+size], At: at}), true
		}

		if t.startOfLine {
			if it, ok, again := t.lineStart(s); ok {
				return t.emit(it), true
			} else if again {
				continue
			}
		}

		if s[0] == '`' {
			return t.emit(t.inlineCode(s)), true
		}

		if t.style.toggle(s[0]) {
			t.pos++
			t.startOfLine = false
			continue
		}

		if it, ok := t.link(s); ok {
			return t.emit(it), true
		}

		end := strings.IndexAny(s, specialChars)
		switch {
		case end < 0:
			end = len(s)
		case end == 0:
			// An unmatched delimiter is literal text.
			_, end = utf8.DecodeRuneInString(s)
		}
		at := t.pos
		t.pos += end
		t.startOfLine = false
		return t.emit(Item{Kind: ItemText, Style: t.style, Text: s[:end], At: at}), true
	}
}

// emit stamps the consumed span on it.
func (t *Tokenizer) emit(it Item) Item {
	it.Src = Span{Start: t.mark, End: t.pos}
	t.mark = t.pos
	return it
}

// lineStart tries the block-level rules. again is set when a rule consumed
// input without producing an item.
func (t *Tokenizer) lineStart(s string) (it Item, ok bool, again bool) {
	switch {
	case s[0] == ' ':
		n := len(s) - len(strings.TrimLeft(s, " "))
		at := t.pos
		t.pos += n
		return Item{Kind: ItemIndentation, Count: n, At: at}, true, false

	case s[0] == '#' && len(s) >= 2 && (s[1] == ' ' || s[1] == '\t'):
		rest := strings.TrimLeft(s[1:], " \t")
		t.pos += len(s) - len(rest)
		t.startOfLine = false
		t.style.Heading = true
		return Item{}, false, true

	case strings.HasPrefix(s, "> "):
		at := t.pos
		t.pos += 2
		t.style.Quoted = true
		return Item{Kind: ItemQuoteIndent, At: at}, true, false

	case strings.HasPrefix(s, "- "):
		at := t.pos
		t.pos += 2
		t.startOfLine = false
		return Item{Kind: ItemBulletPoint, At: at}, true, false
	}

	if it, ok := t.numberedPoint(s); ok {
		return it, true, false
	}

	if strings.HasPrefix(s, "---") {
		at := t.pos
		rest := strings.TrimLeft(s, "-")
		rest = strings.TrimPrefix(rest, "\n")
		t.pos += len(s) - len(rest)
		t.startOfLine = false
		return Item{Kind: ItemSeparator, At: at}, true, false
	}

	if it, ok := t.codeBlock(s); ok {
		return it, true, false
	}
	return Item{}, false, false
}

// numberedPoint matches "1. ", "42. " and so on.
func (t *Tokenizer) numberedPoint(s string) (Item, bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || !strings.HasPrefix(s[n:], ". ") {
		return Item{}, false
	}
	at := t.pos
	t.pos += n + 2
	t.startOfLine = false
	return Item{Kind: ItemNumberedPoint, Text: s[:n], At: at}, true
}

// codeBlock matches "```lang\n...\n```". Without a closing fence the block
// runs to the end of the input.
func (t *Tokenizer) codeBlock(s string) (Item, bool) {
	if !strings.HasPrefix(s, "```") {
		return Item{}, false
	}
	header := s[3:]
	nl := strings.IndexByte(header, '\n')
	if nl < 0 {
		return Item{}, false
	}
	language := strings.TrimSpace(header[:nl])
	tail := header[nl:]
	base := t.pos
	bodyStart := base + 3 + nl + 1
	var body string
	if end := strings.Index(tail, "\n```"); end >= 0 {
		if end > 0 {
			body = tail[1:end]
		}
		t.pos += 3 + nl + end + 4
	} else {
		body = tail[1:]
		t.pos += len(s)
	}
	if strings.HasPrefix(body, "\n") {
		body = body[1:]
		bodyStart++
	}
	body = strings.TrimSuffix(body, "\n")
	t.startOfLine = false
	return Item{
		Kind:     ItemCodeBlock,
		Text:     body,
		Language: language,
		At:       bodyStart,
	}, true
}

// inlineCode matches "`code`". An unclosed span takes the rest of the line.
func (t *Tokenizer) inlineCode(s string) Item {
	line := restOfLine(s[1:])
	at := t.pos + 1
	consumed := 1 + len(line)
	if end := strings.IndexByte(line, '`'); end >= 0 {
		line = line[:end]
		consumed = 1 + end + 1
	}
	t.pos += consumed
	t.startOfLine = false
	style := t.style
	style.Code = true
	return Item{Kind: ItemText, Style: style, Text: line, At: at}
}

// link matches "<url>" and "[title](url)" closed on the current line.
func (t *Tokenizer) link(s string) (Item, bool) {
	switch s[0] {
	case '<':
		line := restOfLine(s)
		end := strings.IndexByte(line, '>')
		if end < 0 {
			return Item{}, false
		}
		url := line[1:end]
		at := t.pos + 1
		t.pos += end + 1
		t.startOfLine = false
		return Item{Kind: ItemHyperlink, Style: t.style, Text: url, URL: url, At: at}, true

	case '[':
		line := restOfLine(s)
		closeBracket := strings.IndexByte(line, ']')
		if closeBracket < 0 || !strings.HasPrefix(line[closeBracket+1:], "(") {
			return Item{}, false
		}
		closeParen := strings.IndexByte(line[closeBracket+2:], ')')
		if closeParen < 0 {
			return Item{}, false
		}
		closeParen += closeBracket + 2
		at := t.pos + 1
		t.pos += closeParen + 1
		t.startOfLine = false
		return Item{
			Kind:  ItemHyperlink,
			Style: t.style,
			Text:  line[1:closeBracket],
			URL:   line[closeBracket+2 : closeParen],
			At:    at,
		}, true
	}
	return Item{}, false
}

// restOfLine returns s up to, not including, the first newline.
func restOfLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
