package easymark

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

const maxDocumentBytes = 32 << 20

// ErrDocumentTooLarge reports input beyond the size Render accepts.
var ErrDocumentTooLarge = errors.New("document too large")

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	// Width is the wrap width in columns. Zero defers to the front matter,
	// then WithDefaultWidth; if none is set the output is not wrapped.
	Width int
	// Theme defaults to the front matter theme, then the default theme,
	// either degraded to the WithColorProfile profile.
	Theme   Theme
	Options []RenderOption
}

// HighlightRequest configures HighlightSource.
type HighlightRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   Theme
	Options []RenderOption
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Display Display
	Options []RenderOption
}

// Render reads a whole EasyMark document and writes it to Writer as ANSI
// text. Every call tokenizes the document from scratch.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := buildRenderConfig(req.Options)
	fm, body, err := readDocument(req.Reader, cfg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	theme := req.Theme
	if theme == nil {
		theme = namedTheme(fm.Theme, cfg.profile)
	}
	width := req.Width
	if width == 0 && fm.Width > 0 {
		width = fm.Width
	}
	if width == 0 {
		width = cfg.defaultWidth
	}
	display := newTerminalDisplay(req.Writer, width, theme, cfg)
	if fm.Title != "" {
		if err := display.WriteLine(titleLine(fm.Title)); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	if err := reduce(body, display); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// HighlightSource reads a document with the same limits and cleaning as
// Render and writes it back through Highlight. A front matter block is
// highlighted like the rest of the text.
func HighlightSource(req HighlightRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("highlight: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("highlight: writer is nil")
	}
	cfg := buildRenderConfig(req.Options)
	cfg.frontMatter = false
	_, src, err := readDocument(req.Reader, cfg)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	theme := req.Theme
	if theme == nil {
		theme = namedTheme("", cfg.profile)
	}
	if _, err := io.WriteString(req.Writer, Highlight(src, theme)); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

// namedTheme returns the built-in theme called name, or the default theme
// when the name is empty or unknown.
func namedTheme(name string, profile termenv.Profile) Theme {
	if t, ok := ThemeForProfile(name, profile); ok {
		return t
	}
	t, _ := ThemeForProfile("", profile)
	return t
}

// RenderString renders src and returns the output.
func RenderString(src string, width int, theme Theme, opts ...RenderOption) (string, error) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   theme,
		Options: opts,
	})
	return out.String(), err
}

// Parse reads a whole document and feeds its lines to Display. It returns
// the decoded front matter, if any.
func Parse(req ParseRequest) (FrontMatter, error) {
	if req.Reader == nil {
		return FrontMatter{}, fmt.Errorf("parse: reader is nil")
	}
	if req.Display == nil {
		return FrontMatter{}, fmt.Errorf("parse: display is nil")
	}
	fm, body, err := readDocument(req.Reader, buildRenderConfig(req.Options))
	if err != nil {
		return fm, fmt.Errorf("parse: %w", err)
	}
	if err := reduce(body, req.Display); err != nil {
		return fm, fmt.Errorf("parse: %w", err)
	}
	return fm, nil
}

func reduce(src string, out Display) error {
	r := NewLineReducer(out)
	t := NewTokenizer(src)
	for {
		it, ok := t.Next()
		if !ok {
			break
		}
		if err := r.Add(it); err != nil {
			return err
		}
	}
	return r.Close()
}

// readDocument loads, validates and cleans the input. Invalid UTF-8
// sequences are dropped; binary input is an error.
func readDocument(r io.Reader, cfg renderConfig) (FrontMatter, string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDocumentBytes+1))
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("read: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return FrontMatter{}, "", ErrDocumentTooLarge
	}
	if err := ValidateInput(data); errors.Is(err, ErrBinaryInput) {
		return FrontMatter{}, "", err
	}
	src := sanitize(strings.ToValidUTF8(string(data), ""))
	if !cfg.frontMatter {
		return FrontMatter{}, src, nil
	}
	fm, body := SplitFrontMatter(src)
	return fm, body, nil
}

func titleLine(title string) Line {
	return Line{Items: []Item{TextItem(Style{Heading: true}, title)}}
}
