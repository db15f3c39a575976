// Package palette holds the color tables behind the built-in themes.
//
// Colors are hex strings so they can be degraded to whatever the output
// terminal supports; attributes are raw SGR sequences.
package palette

const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[2m"
	Italic        = "\x1b[3m"
	Underline     = "\x1b[4m"
	Strikethrough = "\x1b[9m"
)

// Palette is a set of foreground (and a few background) colors.
// Empty fields mean "terminal default".
type Palette struct {
	Text        string
	Heading     string
	Strong      string
	Emphasis    string
	Code        string
	CodeBG      string
	CodeBlock   string
	CodeBlockBG string
	Quote       string
	ListMarker  string
	LinkText    string
	LinkURL     string
	Rule        string
	Small       string
	Raised      string
	Markup      string

	// ChromaStyle names the chroma style used for fenced code.
	ChromaStyle string
}

var PaletteDefault = Palette{
	Heading:     "#5fafff",
	Strong:      "#ffd75f",
	Emphasis:    "#d7afff",
	Code:        "#ff875f",
	CodeBlock:   "#d0d0d0",
	CodeBlockBG: "#262626",
	Quote:       "#8a8a8a",
	ListMarker:  "#5fd7af",
	LinkText:    "#5fafff",
	LinkURL:     "#6c6c6c",
	Rule:        "#585858",
	Small:       "#a8a8a8",
	Raised:      "#afd7ff",
	Markup:      "#6c6c6c",
	ChromaStyle: "monokai",
}

var PaletteDracula = Palette{
	Text:        "#f8f8f2",
	Heading:     "#bd93f9",
	Strong:      "#ffb86c",
	Emphasis:    "#f1fa8c",
	Code:        "#50fa7b",
	CodeBlock:   "#f8f8f2",
	CodeBlockBG: "#282a36",
	Quote:       "#6272a4",
	ListMarker:  "#ff79c6",
	LinkText:    "#8be9fd",
	LinkURL:     "#6272a4",
	Rule:        "#44475a",
	Small:       "#a9a9b3",
	Raised:      "#8be9fd",
	Markup:      "#6272a4",
	ChromaStyle: "dracula",
}

var PaletteNord = Palette{
	Text:        "#d8dee9",
	Heading:     "#88c0d0",
	Strong:      "#ebcb8b",
	Emphasis:    "#b48ead",
	Code:        "#a3be8c",
	CodeBlock:   "#e5e9f0",
	CodeBlockBG: "#3b4252",
	Quote:       "#616e88",
	ListMarker:  "#81a1c1",
	LinkText:    "#8fbcbb",
	LinkURL:     "#4c566a",
	Rule:        "#4c566a",
	Small:       "#a5abb6",
	Raised:      "#88c0d0",
	Markup:      "#4c566a",
	ChromaStyle: "nord",
}

var PaletteGruvbox = Palette{
	Text:        "#ebdbb2",
	Heading:     "#fabd2f",
	Strong:      "#fe8019",
	Emphasis:    "#d3869b",
	Code:        "#b8bb26",
	CodeBlock:   "#ebdbb2",
	CodeBlockBG: "#3c3836",
	Quote:       "#928374",
	ListMarker:  "#8ec07c",
	LinkText:    "#83a598",
	LinkURL:     "#7c6f64",
	Rule:        "#504945",
	Small:       "#a89984",
	Raised:      "#83a598",
	Markup:      "#7c6f64",
	ChromaStyle: "gruvbox",
}

var PaletteTokyoNight = Palette{
	Text:        "#c0caf5",
	Heading:     "#7aa2f7",
	Strong:      "#ff9e64",
	Emphasis:    "#bb9af7",
	Code:        "#9ece6a",
	CodeBlock:   "#c0caf5",
	CodeBlockBG: "#1f2335",
	Quote:       "#565f89",
	ListMarker:  "#7dcfff",
	LinkText:    "#2ac3de",
	LinkURL:     "#565f89",
	Rule:        "#3b4261",
	Small:       "#a9b1d6",
	Raised:      "#7dcfff",
	Markup:      "#565f89",
	ChromaStyle: "tokyonight-night",
}

var PaletteCatppuccinMocha = Palette{
	Text:        "#cdd6f4",
	Heading:     "#89b4fa",
	Strong:      "#fab387",
	Emphasis:    "#f5c2e7",
	Code:        "#a6e3a1",
	CodeBlock:   "#cdd6f4",
	CodeBlockBG: "#313244",
	Quote:       "#7f849c",
	ListMarker:  "#94e2d5",
	LinkText:    "#89dceb",
	LinkURL:     "#6c7086",
	Rule:        "#45475a",
	Small:       "#a6adc8",
	Raised:      "#89dceb",
	Markup:      "#6c7086",
	ChromaStyle: "catppuccin-mocha",
}

var PaletteOneDark = Palette{
	Text:        "#abb2bf",
	Heading:     "#61afef",
	Strong:      "#e5c07b",
	Emphasis:    "#c678dd",
	Code:        "#98c379",
	CodeBlock:   "#abb2bf",
	CodeBlockBG: "#2c313a",
	Quote:       "#5c6370",
	ListMarker:  "#56b6c2",
	LinkText:    "#61afef",
	LinkURL:     "#5c6370",
	Rule:        "#3e4451",
	Small:       "#828997",
	Raised:      "#56b6c2",
	Markup:      "#5c6370",
	ChromaStyle: "onedark",
}

var PaletteSolarizedDark = Palette{
	Text:        "#839496",
	Heading:     "#268bd2",
	Strong:      "#cb4b16",
	Emphasis:    "#6c71c4",
	Code:        "#859900",
	CodeBlock:   "#93a1a1",
	CodeBlockBG: "#073642",
	Quote:       "#586e75",
	ListMarker:  "#2aa198",
	LinkText:    "#268bd2",
	LinkURL:     "#586e75",
	Rule:        "#073642",
	Small:       "#657b83",
	Raised:      "#2aa198",
	Markup:      "#586e75",
	ChromaStyle: "solarized-dark",
}

var PaletteSolarizedLight = Palette{
	Text:        "#657b83",
	Heading:     "#268bd2",
	Strong:      "#cb4b16",
	Emphasis:    "#6c71c4",
	Code:        "#859900",
	CodeBlock:   "#586e75",
	CodeBlockBG: "#eee8d5",
	Quote:       "#93a1a1",
	ListMarker:  "#2aa198",
	LinkText:    "#268bd2",
	LinkURL:     "#93a1a1",
	Rule:        "#eee8d5",
	Small:       "#839496",
	Raised:      "#2aa198",
	Markup:      "#93a1a1",
	ChromaStyle: "solarized-light",
}

var PaletteGithubLight = Palette{
	Text:        "#24292f",
	Heading:     "#0550ae",
	Strong:      "#953800",
	Emphasis:    "#8250df",
	Code:        "#116329",
	CodeBlock:   "#24292f",
	CodeBlockBG: "#f6f8fa",
	Quote:       "#57606a",
	ListMarker:  "#0969da",
	LinkText:    "#0969da",
	LinkURL:     "#6e7781",
	Rule:        "#d0d7de",
	Small:       "#6e7781",
	Raised:      "#0969da",
	Markup:      "#8c959f",
	ChromaStyle: "github",
}
