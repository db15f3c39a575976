package easymark

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"

	"pkt.systems/easymark/internal/palette"
)

const codeTabWidth = 4

// codeSegment is a piece of one code line with its SGR prefix.
type codeSegment struct {
	text   string
	prefix string
}

// lookupLexer finds a chroma lexer by language name, alias or file
// extension.
func lookupLexer(language string) chroma.Lexer {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

// highlightCode splits code into lines of colored segments. base is the
// code block style and is prepended to every segment so token colors sit on
// the block background. Without a lexer or style every line is one segment.
func highlightCode(code, language, styleName string, base ANSIStyle, profile termenv.Profile) [][]codeSegment {
	code = expandTabs(code, codeTabWidth)
	plain := func() [][]codeSegment {
		lines := strings.Split(code, "\n")
		out := make([][]codeSegment, len(lines))
		for i, l := range lines {
			out[i] = []codeSegment{{text: l, prefix: base.Prefix}}
		}
		return out
	}
	if styleName == "" || profile == termenv.Ascii {
		return plain()
	}
	lexer := lookupLexer(language)
	if lexer == nil {
		return plain()
	}
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plain()
	}
	chromaStyle := styles.Get(styleName)

	out := [][]codeSegment{nil}
	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		prefix := base.Prefix + chromaPrefix(chromaStyle.Get(tok.Type), profile)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				out[len(out)-1] = append(out[len(out)-1], codeSegment{text: part, prefix: prefix})
			}
		}
	}
	// Lexers usually append a final newline the block body does not have.
	if n := len(out); n > 1 && len(out[n-1]) == 0 && !strings.HasSuffix(code, "\n") {
		out = out[:n-1]
	}
	return out
}

func chromaPrefix(entry chroma.StyleEntry, profile termenv.Profile) string {
	var b strings.Builder
	if entry.Bold == chroma.Yes {
		b.WriteString(palette.Bold)
	}
	if entry.Italic == chroma.Yes {
		b.WriteString(palette.Italic)
	}
	if entry.Underline == chroma.Yes {
		b.WriteString(palette.Underline)
	}
	if entry.Colour.IsSet() {
		b.WriteString(fg(profile, entry.Colour.String()))
	}
	return b.String()
}
