package easymark

import (
	"fmt"
	"strconv"
)

// Item is one unit produced by the Tokenizer.
//
// Every string field is a substring of the tokenized input; nothing is copied.
type Item struct {
	Kind  ItemKind
	Style Style
	// Text is the text run, the hyperlink title, the digits of a numbered
	// point, or the body of a code block.
	Text     string
	URL      string
	Language string
	// Count is the number of leading spaces of an indentation item.
	Count int
	// At is the byte offset of Text in the input.
	At int
	// Src covers every input byte consumed since the previous item,
	// delimiters and style toggles included.
	Src Span
}

// Span is a half-open byte range [Start, End) of the input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

type itemKind uint8

// ItemKind is the exported alias of itemKind for callers switching on kinds.
type ItemKind = itemKind

const (
	itemNewline itemKind = iota
	itemText
	itemHyperlink
	itemIndentation
	itemQuoteIndent
	itemBulletPoint
	itemNumberedPoint
	itemSeparator
	itemCodeBlock
)

const (
	// ItemNewline ends a logical line.
	ItemNewline ItemKind = itemNewline
	// ItemText is a run of literal text under a style.
	ItemText ItemKind = itemText
	// ItemHyperlink is a link with a title and a URL.
	ItemHyperlink ItemKind = itemHyperlink
	// ItemIndentation counts the leading spaces of a line.
	ItemIndentation ItemKind = itemIndentation
	// ItemQuoteIndent is one level of "> " quoting.
	ItemQuoteIndent ItemKind = itemQuoteIndent
	// ItemBulletPoint is an unordered list marker.
	ItemBulletPoint ItemKind = itemBulletPoint
	// ItemNumberedPoint is an ordered list marker.
	ItemNumberedPoint ItemKind = itemNumberedPoint
	// ItemSeparator is a horizontal rule.
	ItemSeparator ItemKind = itemSeparator
	// ItemCodeBlock is a fenced code block.
	ItemCodeBlock ItemKind = itemCodeBlock
)

var itemKindNames = [...]string{
	itemNewline:       "Newline",
	itemText:          "Text",
	itemHyperlink:     "Hyperlink",
	itemIndentation:   "Indentation",
	itemQuoteIndent:   "QuoteIndent",
	itemBulletPoint:   "BulletPoint",
	itemNumberedPoint: "NumberedPoint",
	itemSeparator:     "Separator",
	itemCodeBlock:     "CodeBlock",
}

func (k itemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "ItemKind(" + strconv.Itoa(int(k)) + ")"
}

// Inline reports whether items of this kind carry line content, as opposed
// to line structure.
func (k itemKind) Inline() bool {
	return k == itemText || k == itemHyperlink || k == itemCodeBlock
}

func (it Item) String() string {
	switch it.Kind {
	case itemText:
		return fmt.Sprintf("Text(%s, %q)", it.Style, it.Text)
	case itemHyperlink:
		return fmt.Sprintf("Hyperlink(%s, %q, %q)", it.Style, it.Text, it.URL)
	case itemIndentation:
		return fmt.Sprintf("Indentation(%d)", it.Count)
	case itemNumberedPoint:
		return fmt.Sprintf("NumberedPoint(%q)", it.Text)
	case itemCodeBlock:
		return fmt.Sprintf("CodeBlock(%q, %q)", it.Language, it.Text)
	default:
		return it.Kind.String()
	}
}

// TextItem builds a Text item. Offsets are left zero.
func TextItem(style Style, text string) Item {
	return Item{Kind: ItemText, Style: style, Text: text}
}

// LinkItem builds a Hyperlink item. Offsets are left zero.
func LinkItem(style Style, title, url string) Item {
	return Item{Kind: ItemHyperlink, Style: style, Text: title, URL: url}
}
