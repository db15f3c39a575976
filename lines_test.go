package easymark

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineTexts(l Line) []string {
	out := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, it.Text)
	}
	return out
}

func TestReduceLinesStructure(t *testing.T) {
	lines := ReduceLines("- a\n  1. b\n> > q\n---\nz")
	require.Len(t, lines, 5)

	assert.Equal(t, bulletMarker, lines[0].Marker)
	assert.Equal(t, []string{"a"}, lineTexts(lines[0]))

	assert.Equal(t, 2, lines[1].Indent)
	assert.Equal(t, "1.", lines[1].Marker)
	assert.Equal(t, []string{"b"}, lineTexts(lines[1]))

	assert.Equal(t, 2, lines[2].QuoteDepth)
	assert.Equal(t, []string{"q"}, lineTexts(lines[2]))
	assert.True(t, lines[2].Items[0].Style.Quoted)

	assert.True(t, lines[3].Separator)
	assert.Empty(t, lines[3].Items)

	assert.Equal(t, []string{"z"}, lineTexts(lines[4]))
	assert.Zero(t, lines[4].Indent)
	assert.Zero(t, lines[4].QuoteDepth)
}

func TestReduceLinesKeepsBlankLines(t *testing.T) {
	lines := ReduceLines("a\n\nb\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"a"}, lineTexts(lines[0]))
	assert.True(t, lines[1].Blank())
	assert.Equal(t, []string{"b"}, lineTexts(lines[2]))
}

func TestReduceLinesResetsPerLineState(t *testing.T) {
	lines := ReduceLines("> - 3. x\nplain")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].QuoteDepth)
	assert.Equal(t, bulletMarker, lines[0].Marker)
	assert.Equal(t, Line{Items: lines[1].Items}, lines[1])
}

func TestReduceLinesQuoteOnlyLineIsNotBlank(t *testing.T) {
	lines := ReduceLines("> ")
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].QuoteDepth)
	assert.Empty(t, lines[0].Items)
}

func TestReduceLinesKeepsCodeBlockInLine(t *testing.T) {
	lines := ReduceLines("```go\nx := 1\n```\nafter")
	require.Len(t, lines, 2)
	require.Len(t, lines[0].Items, 1)
	assert.Equal(t, ItemCodeBlock, lines[0].Items[0].Kind)
	assert.Equal(t, "go", lines[0].Items[0].Language)
	assert.Equal(t, []string{"after"}, lineTexts(lines[1]))
}

func TestLineReducerSeparatorFlushesPendingLine(t *testing.T) {
	c := &lineCollector{}
	r := NewLineReducer(c)
	require.NoError(t, r.Add(TextItem(Style{}, "before")))
	require.NoError(t, r.Add(Item{Kind: ItemSeparator}))
	require.NoError(t, r.Add(TextItem(Style{}, "after")))
	require.NoError(t, r.Close())

	require.Len(t, c.lines, 3)
	assert.Equal(t, []string{"before"}, lineTexts(c.lines[0]))
	assert.True(t, c.lines[1].Separator)
	assert.Equal(t, []string{"after"}, lineTexts(c.lines[2]))
}

func TestLineReducerIndentationAssigns(t *testing.T) {
	c := &lineCollector{}
	r := NewLineReducer(c)
	require.NoError(t, r.Add(Item{Kind: ItemIndentation, Count: 4}))
	require.NoError(t, r.Add(Item{Kind: ItemIndentation, Count: 2}))
	require.NoError(t, r.Add(TextItem(Style{}, "x")))
	require.NoError(t, r.Close())
	require.Len(t, c.lines, 1)
	assert.Equal(t, 2, c.lines[0].Indent)
}

func TestLineReducerKeepsOnlyInlineItems(t *testing.T) {
	c := &lineCollector{}
	r := NewLineReducer(c)
	require.NoError(t, r.Add(TextItem(Style{}, "a")))
	require.NoError(t, r.Add(Item{Kind: itemKind(99), Text: "stray"}))
	require.NoError(t, r.Add(Item{Kind: ItemHyperlink, Text: "l", URL: "u"}))
	require.NoError(t, r.Add(Item{Kind: ItemCodeBlock, Text: "c"}))
	require.NoError(t, r.Close())

	require.Len(t, c.lines, 1)
	assert.Equal(t, []string{"a", "l", "c"}, lineTexts(c.lines[0]))
	for _, it := range c.lines[0].Items {
		assert.True(t, it.Kind.Inline(), it.Kind.String())
	}
	assert.False(t, ItemNewline.Inline())
	assert.False(t, ItemBulletPoint.Inline())
}

type failingDisplay struct {
	err     error
	flushed bool
}

func (f *failingDisplay) WriteLine(Line) error { return f.err }
func (f *failingDisplay) Flush() error {
	f.flushed = true
	return nil
}

func TestLineReducerPropagatesDisplayErrors(t *testing.T) {
	boom := errors.New("boom")
	d := &failingDisplay{err: boom}
	r := NewLineReducer(d)
	require.NoError(t, r.Add(TextItem(Style{}, "x")))
	require.ErrorIs(t, r.Add(Item{Kind: ItemNewline}), boom)
	require.ErrorIs(t, r.Add(Item{Kind: ItemSeparator}), boom)

	require.NoError(t, r.Add(TextItem(Style{}, "y")))
	require.ErrorIs(t, r.Close(), boom)
	assert.False(t, d.flushed)
}

func TestLineBlank(t *testing.T) {
	assert.True(t, Line{}.Blank())
	assert.True(t, Line{Indent: 3}.Blank())
	assert.False(t, Line{Separator: true}.Blank())
	assert.False(t, Line{Marker: bulletMarker}.Blank())
	assert.False(t, Line{QuoteDepth: 1}.Blank())
}
