package easymark

import "strings"

// Highlight returns src unchanged except for ANSI styling: every byte is
// colored by the item that consumed it, and delimiters get the Markup style.
// Stripping the escape sequences gives back src exactly.
func Highlight(src string, theme Theme) string {
	if theme == nil {
		theme = DefaultTheme()
	}
	st := theme.Styles()
	h := highlighter{src: src, out: &strings.Builder{}}
	h.out.Grow(len(src) * 2)

	t := NewTokenizer(src)
	end := 0
	for {
		it, ok := t.Next()
		if !ok {
			break
		}
		h.item(st, it)
		end = it.Src.End
	}
	h.paint(st.Markup.Prefix, end, len(src))
	return h.out.String()
}

type highlighter struct {
	src string
	out *strings.Builder
}

func (h highlighter) paint(prefix string, from, to int) {
	if from >= to {
		return
	}
	text := h.src[from:to]
	if prefix == "" {
		h.out.WriteString(text)
		return
	}
	h.out.WriteString(prefix)
	h.out.WriteString(text)
	h.out.WriteString(ansiReset)
}

func (h highlighter) item(st Styles, it Item) {
	markup := st.Markup.Prefix
	h.paint(markup, it.Src.Start, it.At)
	switch it.Kind {
	case ItemText:
		h.paint(styleSGR(st, it.Style), it.At, it.At+len(it.Text))
		h.paint(markup, it.At+len(it.Text), it.Src.End)
	case ItemHyperlink:
		h.paint(styleSGR(st, it.Style)+st.LinkText.Prefix, it.At, it.At+len(it.Text))
		h.paint(st.LinkURL.Prefix, it.At+len(it.Text), it.Src.End)
	case ItemCodeBlock:
		h.paint(st.CodeBlock.Prefix, it.At, it.At+len(it.Text))
		h.paint(markup, it.At+len(it.Text), it.Src.End)
	case ItemBulletPoint, ItemNumberedPoint:
		h.paint(st.ListMarker.Prefix, it.At, it.Src.End)
	case ItemQuoteIndent:
		h.paint(st.Quote.Prefix, it.At, it.Src.End)
	case ItemSeparator:
		h.paint(st.Rule.Prefix, it.At, it.Src.End)
	default:
		h.paint("", it.At, it.Src.End)
	}
}
