package easymark

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const maxFrontMatterBytes = 64 * 1024

// FrontMatter is the metadata block that may open a document.
type FrontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Theme string `yaml:"theme" toml:"theme" json:"theme"`
	Width int    `yaml:"width" toml:"width" json:"width"`
	// Format is "yaml", "toml" or "json"; empty when there was no block.
	Format string `yaml:"-" toml:"-" json:"-"`
}

// SplitFrontMatter strips a leading metadata block from src and decodes it.
//
// A block opens with a line of "---" (YAML), "+++" (TOML) or ";;;" (JSON)
// and closes with the same delimiter. The first line inside must look like
// metadata, so a document that starts with a "---" separator followed by
// prose is left alone. Unclosed blocks, blocks that fail to decode and
// blocks setting none of title, theme or width are not front matter either;
// src is then returned untouched.
func SplitFrontMatter(src string) (FrontMatter, string) {
	body := strings.TrimPrefix(src, "\ufeff")
	openLine, rest, ok := strings.Cut(body, "\n")
	if !ok {
		return FrontMatter{}, src
	}
	delim := strings.TrimSpace(openLine)
	var format string
	switch delim {
	case "---":
		format = "yaml"
	case "+++":
		format = "toml"
	case ";;;":
		format = "json"
	default:
		return FrontMatter{}, src
	}
	firstLine, _, _ := strings.Cut(rest, "\n")
	if !frontMatterMetadataLikely(firstLine) {
		return FrontMatter{}, src
	}

	meta, after, found := findClosingFrontMatterDelimiter(rest, delim)
	if !found || len(meta) > maxFrontMatterBytes {
		return FrontMatter{}, src
	}

	fm := FrontMatter{Format: format}
	var err error
	switch format {
	case "yaml":
		err = yaml.Unmarshal([]byte(meta), &fm)
	case "toml":
		err = toml.Unmarshal([]byte(meta), &fm)
	case "json":
		err = json.Unmarshal([]byte(meta), &fm)
	}
	if err != nil || !fm.known() {
		return FrontMatter{}, src
	}
	return fm, after
}

func (fm FrontMatter) known() bool {
	return fm.Title != "" || fm.Theme != "" || fm.Width != 0
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

// findClosingFrontMatterDelimiter returns the metadata before the closing
// delimiter line and the text after it.
func findClosingFrontMatterDelimiter(src, delim string) (meta, after string, found bool) {
	for idx := 0; idx < len(src); {
		line, _, hasNext := strings.Cut(src[idx:], "\n")
		next := idx + len(line)
		if hasNext {
			next++
		}
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) == delim {
			return src[:idx], src[next:], true
		}
		idx = next
	}
	return "", "", false
}
