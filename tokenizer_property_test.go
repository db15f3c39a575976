package easymark

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// markupRunes is biased towards delimiters so generated documents hit the
// interesting rules often.
var markupRunes = []rune("ab1 .*_~/$^`\\<>[]()#->\n\té")

func markupString() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom(markupRunes))
}

func toggleString() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom([]rune("*_~/$^")))
}

func TestPropertyTokenizerConsumesEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.OneOf(markupString(), rapid.String()).Draw(t, "src")
		tok := NewTokenizer(src)
		prev := 0
		for n := 0; ; n++ {
			if n > len(src)+1 {
				t.Fatalf("more items than input bytes for %q", src)
			}
			it, ok := tok.Next()
			if !ok {
				break
			}
			if it.Src.Start != prev {
				t.Fatalf("item %v starts at %d, previous ended at %d", it, it.Src.Start, prev)
			}
			if it.Src.Len() <= 0 {
				t.Fatalf("item %v consumed nothing", it)
			}
			if it.At < it.Src.Start || it.At+len(it.Text) > it.Src.End {
				t.Fatalf("item %v text outside its span %v", it, it.Src)
			}
			if src[it.At:it.At+len(it.Text)] != it.Text {
				t.Fatalf("item %v text does not match input at %d", it, it.At)
			}
			prev = it.Src.End
		}
		if tok.Offset() != len(src) {
			t.Fatalf("consumed %d of %d bytes", tok.Offset(), len(src))
		}
	})
}

func TestPropertyTokenizeIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := markupString().Draw(t, "src")
		a, b := Tokenize(src), Tokenize(src)
		if len(a) != len(b) {
			t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("item %d differs: %v vs %v", i, a[i], b[i])
			}
		}
	})
}

func TestPropertyToggleTwiceIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := toggleString().Draw(t, "prefix")
		c := rapid.SampledFrom([]byte("*_~/$^")).Draw(t, "toggle")

		var before Style
		for i := 0; i < len(prefix); i++ {
			before.toggle(prefix[i])
		}
		after := before
		after.toggle(c)
		if after == before {
			t.Fatalf("toggle %q changed nothing", c)
		}
		after.toggle(c)
		if after != before {
			t.Fatalf("toggle %q twice: got %v want %v", c, after, before)
		}

		base := Tokenize(prefix + "x")
		doubled := Tokenize(prefix + string([]byte{c, c}) + "x")
		if len(base) != 1 || len(doubled) != 1 {
			t.Fatalf("expected one item each, got %v and %v", base, doubled)
		}
		if base[0].Style != doubled[0].Style {
			t.Fatalf("style %v after double toggle, want %v", doubled[0].Style, base[0].Style)
		}
	})
}

func TestPropertyEscapeYieldsCharacter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		prefix := toggleString().Draw(t, "prefix")
		r := rapid.Rune().Filter(func(r rune) bool {
			return r != '\n' && utf8.ValidRune(r)
		}).Draw(t, "rune")
		items := Tokenize(prefix + `\` + string(r))
		if len(items) != 1 {
			t.Fatalf("expected one item, got %v", items)
		}
		if items[0].Kind != ItemText || items[0].Text != string(r) {
			t.Fatalf("escape of %q gave %v", r, items[0])
		}
	})
}

func TestPropertyUnterminatedCodeSpan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rest := rapid.StringOf(rapid.SampledFrom([]rune("ab *_<[\\é"))).Draw(t, "rest")
		items := Tokenize("`" + rest)
		if len(items) != 1 {
			t.Fatalf("expected one item, got %v", items)
		}
		if !items[0].Style.Code || items[0].Text != rest {
			t.Fatalf("unexpected item %v", items[0])
		}
	})
}

func TestPropertyHighlightRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := markupString().Draw(t, "src")
		out := Highlight(src, DefaultTheme())
		if got := sgrPattern.ReplaceAllString(out, ""); got != src {
			t.Fatalf("stripped highlight differs:\n got %q\nwant %q", got, src)
		}
	})
}

func TestPropertyReducedLinesKeepText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := rapid.StringOf(rapid.SampledFrom([]rune("ab *_\n"))).Draw(t, "src")
		var got strings.Builder
		for _, l := range ReduceLines(src) {
			for _, it := range l.Items {
				got.WriteString(it.Text)
			}
		}
		want := strings.NewReplacer("*", "", "_", "", "\n", "").Replace(src)
		if strings.ReplaceAll(got.String(), " ", "") != strings.ReplaceAll(want, " ", "") {
			t.Fatalf("text lost: got %q from %q", got.String(), src)
		}
	})
}
