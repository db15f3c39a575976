package easymark

import (
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"pkt.systems/easymark/internal/palette"
)

// ANSIStyle is a terminal style expressed as an ANSI prefix sequence.
type ANSIStyle struct {
	Prefix string
}

// Styles groups the terminal styles used by the renderer.
type Styles struct {
	Text          ANSIStyle
	Heading       ANSIStyle
	Strong        ANSIStyle
	Italics       ANSIStyle
	Underline     ANSIStyle
	Strikethrough ANSIStyle
	Small         ANSIStyle
	Raised        ANSIStyle
	Quote         ANSIStyle
	Code          ANSIStyle
	CodeBlock     ANSIStyle
	ListMarker    ANSIStyle
	LinkText      ANSIStyle
	LinkURL       ANSIStyle
	Rule          ANSIStyle
	// Markup styles delimiters in the highlighted source view.
	Markup ANSIStyle

	// CodeStyle names the chroma style for fenced code. Empty disables
	// syntax colors.
	CodeStyle string
	// Profile is the color profile the styles were built for.
	Profile termenv.Profile
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme that emits no escape sequences at all.
func BoringTheme() Theme {
	return theme{name: "boring", styles: Styles{Profile: termenv.Ascii}}
}

func style(prefixes ...string) ANSIStyle {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return ANSIStyle{Prefix: b.String()}
}

// fg degrades a hex color to profile and returns its SGR sequence.
func fg(profile termenv.Profile, hex string) string {
	return colorSeq(profile, hex, false)
}

func bg(profile termenv.Profile, hex string) string {
	return colorSeq(profile, hex, true)
}

func colorSeq(profile termenv.Profile, hex string, background bool) string {
	if hex == "" {
		return ""
	}
	c := profile.Color(hex)
	if c == nil {
		return ""
	}
	seq := c.Sequence(background)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func stylesFromPalette(p palette.Palette, profile termenv.Profile) Styles {
	return Styles{
		Text:          style(fg(profile, p.Text)),
		Heading:       style(palette.Bold, fg(profile, p.Heading)),
		Strong:        style(palette.Bold, fg(profile, p.Strong)),
		Italics:       style(palette.Italic, fg(profile, p.Emphasis)),
		Underline:     style(palette.Underline),
		Strikethrough: style(palette.Strikethrough),
		Small:         style(palette.Faint, fg(profile, p.Small)),
		Raised:        style(palette.Italic, fg(profile, p.Raised)),
		Quote:         style(palette.Faint, fg(profile, p.Quote)),
		Code:          style(fg(profile, p.Code), bg(profile, p.CodeBG)),
		CodeBlock:     style(fg(profile, p.CodeBlock), bg(profile, p.CodeBlockBG)),
		ListMarker:    style(palette.Bold, fg(profile, p.ListMarker)),
		LinkText:      style(palette.Underline, fg(profile, p.LinkText)),
		LinkURL:       style(fg(profile, p.LinkURL)),
		Rule:          style(fg(profile, p.Rule)),
		Markup:        style(palette.Faint, fg(profile, p.Markup)),
		CodeStyle:     p.ChromaStyle,
		Profile:       profile,
	}
}

var builtinPalettes = map[string]palette.Palette{
	"default":          palette.PaletteDefault,
	"dracula":          palette.PaletteDracula,
	"nord":             palette.PaletteNord,
	"gruvbox":          palette.PaletteGruvbox,
	"tokyo-night":      palette.PaletteTokyoNight,
	"catppuccin-mocha": palette.PaletteCatppuccinMocha,
	"one-dark":         palette.PaletteOneDark,
	"solarized-dark":   palette.PaletteSolarizedDark,
	"solarized-light":  palette.PaletteSolarizedLight,
	"github-light":     palette.PaletteGithubLight,
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name for a true color terminal.
func ThemeByName(name string) (Theme, bool) {
	return ThemeForProfile(name, termenv.TrueColor)
}

// ThemeForProfile returns a built-in theme with its colors degraded to
// profile. With termenv.Ascii only text attributes remain.
func ThemeForProfile(name string, profile termenv.Profile) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "default"
	}
	p, ok := builtinPalettes[normalized]
	if !ok {
		return nil, false
	}
	return theme{name: normalized, styles: stylesFromPalette(p, profile)}, true
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	t, _ := ThemeByName("default")
	return t
}
