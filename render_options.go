package easymark

import "github.com/muesli/termenv"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8          bool
	softWrap      bool
	codeHighlight bool
	codeStyle     string
	frontMatter   bool
	profile       termenv.Profile
	defaultWidth  int
}

func defaultRenderConfig() renderConfig {
	return renderConfig{codeHighlight: true, frontMatter: true, profile: termenv.TrueColor}
}

func buildRenderConfig(opts []RenderOption) renderConfig {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithOSC8 enables or disables OSC 8 hyperlinks.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap hard-breaks words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithCodeHighlight enables or disables syntax colors in fenced code.
// It is on by default.
func WithCodeHighlight(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.codeHighlight = enabled
	}
}

// WithChromaStyle overrides the theme's chroma style for fenced code.
func WithChromaStyle(name string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.codeStyle = name
	}
}

// WithFrontMatter controls whether a leading metadata block is stripped and
// decoded. It is on by default.
func WithFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = enabled
	}
}

// WithColorProfile sets the profile used when the theme is picked by name
// from front matter or defaulted. It is termenv.TrueColor by default.
func WithColorProfile(profile termenv.Profile) RenderOption {
	return func(cfg *renderConfig) {
		cfg.profile = profile
	}
}

// WithDefaultWidth sets the wrap width used when neither the request nor
// the front matter sets one.
func WithDefaultWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.defaultWidth = width
	}
}
