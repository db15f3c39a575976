package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML config. Unset fields keep flag defaults.
type fileConfig struct {
	Theme       *string `yaml:"theme"`
	Width       *int    `yaml:"width"`
	OSC8        *string `yaml:"osc8"`
	Color       *string `yaml:"color"`
	CodeStyle   *string `yaml:"code_style"`
	Highlight   *bool   `yaml:"highlight"`
	FrontMatter *bool   `yaml:"front_matter"`
	SoftWrap    *bool   `yaml:"soft_wrap"`
}

// options is the effective configuration after merging file and flags. An
// empty theme and a zero width leave the choice to the document.
type options struct {
	theme       string
	width       int
	osc8        string
	color       string
	codeStyle   string
	highlight   bool
	frontMatter bool
	softWrap    bool
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "easymark", "config.yaml")
}

// loadConfig reads path, or the default location when path is empty. A
// missing default file is not an error.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return fileConfig{}, nil
		}
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) options() options {
	o := options{
		osc8:        "auto",
		color:       "auto",
		highlight:   true,
		frontMatter: true,
	}
	if c.Theme != nil {
		o.theme = *c.Theme
	}
	if c.Width != nil {
		o.width = *c.Width
	}
	if c.OSC8 != nil {
		o.osc8 = *c.OSC8
	}
	if c.Color != nil {
		o.color = *c.Color
	}
	if c.CodeStyle != nil {
		o.codeStyle = *c.CodeStyle
	}
	if c.Highlight != nil {
		o.highlight = *c.Highlight
	}
	if c.FrontMatter != nil {
		o.frontMatter = *c.FrontMatter
	}
	if c.SoftWrap != nil {
		o.softWrap = *c.SoftWrap
	}
	return o
}

// override copies values from flag for every flag set on the command line.
func (o *options) override(flags *pflag.FlagSet, flag options) {
	if flags.Changed("theme") {
		o.theme = flag.theme
	}
	if flags.Changed("width") {
		o.width = flag.width
	}
	if flags.Changed("osc8") {
		o.osc8 = flag.osc8
	}
	if flags.Changed("color") {
		o.color = flag.color
	}
	if flags.Changed("code-style") {
		o.codeStyle = flag.codeStyle
	}
	if flags.Changed("no-highlight") {
		o.highlight = flag.highlight
	}
	if flags.Changed("no-front-matter") {
		o.frontMatter = flag.frontMatter
	}
	if flags.Changed("soft-wrap") {
		o.softWrap = flag.softWrap
	}
}
