package easymark

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var ignoreOffsets = cmpopts.IgnoreFields(Item{}, "At", "Src")

func newline() Item               { return Item{Kind: ItemNewline} }
func bullet() Item                { return Item{Kind: ItemBulletPoint} }
func quote() Item                 { return Item{Kind: ItemQuoteIndent} }
func separator() Item             { return Item{Kind: ItemSeparator} }
func indent(n int) Item           { return Item{Kind: ItemIndentation, Count: n} }
func numbered(digits string) Item { return Item{Kind: ItemNumberedPoint, Text: digits} }

func codeBlock(lang, code string) Item {
	return Item{Kind: ItemCodeBlock, Language: lang, Text: code}
}

func plain(text string) Item { return TextItem(Style{}, text) }

func checkTokens(t *testing.T, src string, want []Item) {
	t.Helper()
	got := Tokenize(src)
	if diff := cmp.Diff(want, got, ignoreOffsets, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", src, diff)
	}
}

func TestTokenizeScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []Item
	}{
		{
			name: "strong",
			src:  "*bold*",
			want: []Item{TextItem(Style{Strong: true}, "bold")},
		},
		{
			name: "code inside strikethrough",
			src:  "~strikethrough `code`~",
			want: []Item{
				TextItem(Style{Strikethrough: true}, "strikethrough "),
				TextItem(Style{Strikethrough: true, Code: true}, "code"),
			},
		},
		{
			name: "heading",
			src:  "# Title\n",
			want: []Item{TextItem(Style{Heading: true}, "Title"), newline()},
		},
		{
			name: "bullet",
			src:  "- item\n",
			want: []Item{bullet(), plain("item"), newline()},
		},
		{
			name: "numbered",
			src:  "1. first\n2. second\n",
			want: []Item{
				numbered("1"), plain("first"), newline(),
				numbered("2"), plain("second"), newline(),
			},
		},
		{
			name: "separator",
			src:  "---\n",
			want: []Item{separator()},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkTokens(t, tc.src, tc.want)
		})
	}
}

func TestTokenizeInlineStyles(t *testing.T) {
	cases := map[string][]Item{
		"a*b*c": {plain("a"), TextItem(Style{Strong: true}, "b"), plain("c")},
		"_u_ ~s~ /i/ $m$ ^r^": {
			TextItem(Style{Underline: true}, "u"), plain(" "),
			TextItem(Style{Strikethrough: true}, "s"), plain(" "),
			TextItem(Style{Italics: true}, "i"), plain(" "),
			TextItem(Style{Small: true}, "m"), plain(" "),
			TextItem(Style{Raised: true}, "r"),
		},
		"*_both_*": {TextItem(Style{Strong: true, Underline: true}, "both")},
		"*_x*_y":   {TextItem(Style{Strong: true, Underline: true}, "x"), plain("y")},
		"*open\nnext": {
			TextItem(Style{Strong: true}, "open"), newline(), plain("next"),
		},
		"`a`b": {TextItem(Style{Code: true}, "a"), plain("b")},
		"``":   {TextItem(Style{Code: true}, "")},
	}
	for src, want := range cases {
		checkTokens(t, src, want)
	}
}

func TestTokenizeEscapes(t *testing.T) {
	cases := map[string][]Item{
		`\*x`:      {plain("*"), plain("x")},
		`*\*\**`:   {TextItem(Style{Strong: true}, "*"), TextItem(Style{Strong: true}, "*")},
		`\é`:       {plain("é")},
		`\\`:       {plain(`\`)},
		"a\\\nb":   {plain("a"), plain("b")},
		`trailing\`: {plain("trailing"), plain(`\`)},
		"\\- not a list": {plain("-"), plain(" not a list")},
	}
	for src, want := range cases {
		checkTokens(t, src, want)
	}
}

func TestTokenizeEscapedNewlineKeepsLineStart(t *testing.T) {
	checkTokens(t, "\\\n- item", []Item{bullet(), plain("item")})
}

func TestTokenizeBlockRules(t *testing.T) {
	cases := map[string][]Item{
		"  - nested":   {indent(2), bullet(), plain("nested")},
		"   # deep":    {indent(3), TextItem(Style{Heading: true}, "deep")},
		"#\t\ttabbed":  {TextItem(Style{Heading: true}, "tabbed")},
		"#nospace":     {plain("#nospace")},
		"> > q\n":      {quote(), quote(), TextItem(Style{Quoted: true}, "q"), newline()},
		"> - item":     {quote(), bullet(), TextItem(Style{Quoted: true}, "item")},
		"42. answer":   {numbered("42"), plain("answer")},
		"1.5 percent":  {plain("1.5 percent")},
		"12.":          {plain("12.")},
		"-- dashes":    {plain("-- dashes")},
		"-----":        {separator()},
		"---\n- a":     {separator(), plain("- a")},
		"text - not":   {plain("text - not")},
		"a\n> b":       {plain("a"), newline(), quote(), TextItem(Style{Quoted: true}, "b")},
		"\ttab":        {plain("\ttab")},
		"# *big* deal": {TextItem(Style{Heading: true, Strong: true}, "big"), TextItem(Style{Heading: true}, " deal")},
	}
	for src, want := range cases {
		checkTokens(t, src, want)
	}
}

func TestTokenizeMarkerOnlyLines(t *testing.T) {
	checkTokens(t, "# \nnext", []Item{newline(), plain("next")})
	checkTokens(t, "> \nnext", []Item{quote(), newline(), plain("next")})
	checkTokens(t, "> > ", []Item{quote(), quote()})
	checkTokens(t, "- \n", []Item{bullet(), newline()})
}

func TestTokenizeCodeBlocks(t *testing.T) {
	cases := map[string][]Item{
		"```go\nfmt.Println()\n```\n": {codeBlock("go", "fmt.Println()"), newline()},
		"```\n```":                    {codeBlock("", "")},
		"``` rust \nfn x() {}\n```":   {codeBlock("rust", "fn x() {}")},
		"```\n\nkeep\n\n\n```":        {codeBlock("", "keep\n")},
		"```\n  *not styled*\n```":    {codeBlock("", "  *not styled*")},
		"```\nopen to end\n":          {codeBlock("", "open to end")},
		"```\nopen to end":            {codeBlock("", "open to end")},
		"```no newline":               {TextItem(Style{Code: true}, ""), TextItem(Style{Code: true}, "no newline")},
		"x\n```\ny\n```\nz":           {plain("x"), newline(), codeBlock("", "y"), newline(), plain("z")},
	}
	for src, want := range cases {
		checkTokens(t, src, want)
	}
}

func TestTokenizeLinks(t *testing.T) {
	cases := map[string][]Item{
		"<https://example.com>": {LinkItem(Style{}, "https://example.com", "https://example.com")},
		"see [docs](https://example.com/docs) now": {
			plain("see "),
			LinkItem(Style{}, "docs", "https://example.com/docs"),
			plain(" now"),
		},
		"*[a](b)*":      {LinkItem(Style{Strong: true}, "a", "b")},
		"[]()":          {LinkItem(Style{}, "", "")},
		"<open":         {plain("<"), plain("open")},
		"[t] x":         {plain("["), plain("t] x")},
		"[t](u":         {plain("["), plain("t](u")},
		"<a\n>":         {plain("<"), plain("a"), newline(), plain(">")},
		"[t](u\n)":      {plain("["), plain("t](u"), newline(), plain(")")},
		"a <b> c <d>":   {plain("a "), LinkItem(Style{}, "b", "b"), plain(" c "), LinkItem(Style{}, "d", "d")},
	}
	for src, want := range cases {
		checkTokens(t, src, want)
	}
}

func TestTokenizeUnterminatedInlineCode(t *testing.T) {
	checkTokens(t, "`abc", []Item{TextItem(Style{Code: true}, "abc")})
	checkTokens(t, "x `abc\ny", []Item{
		plain("x "), TextItem(Style{Code: true}, "abc"), newline(), plain("y"),
	})
}

func TestTokenizeEmptyInput(t *testing.T) {
	if items := Tokenize(""); len(items) != 0 {
		t.Fatalf("expected no items, got %v", items)
	}
	checkTokens(t, "   ", []Item{indent(3)})
	checkTokens(t, "\n\n", []Item{newline(), newline()})
}

func TestTokenizeOffsets(t *testing.T) {
	src := "# T *b*\n- [x](y) `c`\n```go\nz\n```"
	want := []struct {
		kind ItemKind
		at   int
		src  Span
	}{
		{ItemText, 2, Span{0, 4}},     // "# T "
		{ItemText, 5, Span{4, 6}},     // "*b"
		{ItemNewline, 7, Span{6, 8}},  // "*\n"
		{ItemBulletPoint, 8, Span{8, 10}},
		{ItemHyperlink, 11, Span{10, 16}},
		{ItemText, 16, Span{16, 17}},
		{ItemText, 18, Span{17, 20}},
		{ItemNewline, 20, Span{20, 21}},
		{ItemCodeBlock, 27, Span{21, 32}},
	}
	items := Tokenize(src)
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, w := range want {
		it := items[i]
		if it.Kind != w.kind || it.At != w.at || it.Src != w.src {
			t.Fatalf("item %d = %v at %d src %v, want %v at %d src %v", i, it, it.At, it.Src, w.kind, w.at, w.src)
		}
		if it.Text != "" && src[it.At:it.At+len(it.Text)] != it.Text {
			t.Fatalf("item %d text %q not found at offset %d", i, it.Text, it.At)
		}
	}
}

func TestTokenizerIsPullBased(t *testing.T) {
	tok := NewTokenizer("a\nb")
	first, ok := tok.Next()
	if !ok || first.Text != "a" {
		t.Fatalf("unexpected first item %v", first)
	}
	if tok.Offset() != 1 {
		t.Fatalf("expected offset 1, got %d", tok.Offset())
	}
	var rest []Item
	for it := range tok.All() {
		rest = append(rest, it)
	}
	if diff := cmp.Diff([]Item{newline(), plain("b")}, rest, ignoreOffsets); diff != "" {
		t.Fatalf("rest mismatch (-want +got):\n%s", diff)
	}
	if _, ok := tok.Next(); ok {
		t.Fatalf("expected exhausted tokenizer")
	}
}

func TestItemsRestarts(t *testing.T) {
	seq := Items("*a* b")
	var first, second []Item
	for it := range seq {
		first = append(first, it)
	}
	for it := range seq {
		second = append(second, it)
		break
	}
	if len(first) != 2 || len(second) != 1 {
		t.Fatalf("unexpected lengths %d and %d", len(first), len(second))
	}
	if diff := cmp.Diff(first[0], second[0]); diff != "" {
		t.Fatalf("restart mismatch (-want +got):\n%s", diff)
	}
}

func TestItemString(t *testing.T) {
	cases := map[string]Item{
		`Text(strong+italics, "x")`: TextItem(Style{Strong: true, Italics: true}, "x"),
		`Text(plain, "y")`:          plain("y"),
		`Hyperlink(plain, "t", "u")`: LinkItem(Style{}, "t", "u"),
		`Indentation(2)`:            indent(2),
		`NumberedPoint("7")`:        numbered("7"),
		`CodeBlock("go", "x")`:      codeBlock("go", "x"),
		`Separator`:                 separator(),
	}
	for want, it := range cases {
		if got := it.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if got := ItemKind(200).String(); got != "ItemKind(200)" {
		t.Fatalf("unexpected unknown kind name %q", got)
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := string(readSample(b))
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		t := NewTokenizer(src)
		for {
			if _, ok := t.Next(); !ok {
				break
			}
		}
	}
}
