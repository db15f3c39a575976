package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/easymark"
	"pkt.systems/easymark/internal/watcher"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	clearScreen      = "\x1b[H\x1b[2J"
)

func init() {
	version.SetDefaultModule("pkt.systems/easymark")
}

func main() {
	var (
		cfgPath       string
		themeName     string
		widthFlag     int
		osc8Flag      string
		colorFlag     string
		boring        bool
		listThemes    bool
		outPath       string
		source        bool
		noHighlight   bool
		codeStyle     string
		noFrontMatter bool
		softWrap      bool
		watch         bool
		showVersion   bool
	)

	flags := pflag.NewFlagSet("easymark", pflag.ExitOnError)
	flags.StringVar(&cfgPath, "config", "", "YAML config file (default $XDG_CONFIG_HOME/easymark/config.yaml if present)")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 defers to front matter, then the terminal width)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.StringVar(&colorFlag, "color", "auto", "Colors: auto|always|never")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&source, "source", false, "Print the highlighted source instead of the rendered document")
	flags.BoolVar(&noHighlight, "no-highlight", false, "Disable syntax colors in code blocks")
	flags.StringVar(&codeStyle, "code-style", "", "Chroma style for code blocks (default from theme)")
	flags.BoolVar(&noFrontMatter, "no-front-matter", false, "Render a leading metadata block as text")
	flags.BoolVar(&softWrap, "soft-wrap", false, "Break words longer than the width")
	flags.BoolVar(&watch, "watch", false, "Re-render whenever an input file changes")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: easymark [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, EasyMark is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes(os.Stdout)
		return
	}

	fileCfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	opts := fileCfg.options()
	opts.override(flags, options{
		theme:       themeName,
		width:       widthFlag,
		osc8:        osc8Flag,
		color:       colorFlag,
		codeStyle:   codeStyle,
		highlight:   !noHighlight,
		frontMatter: !noFrontMatter,
		softWrap:    softWrap,
	})
	if boring {
		opts.color = "never"
	}

	args := flags.Args()
	if watch {
		if err := checkWatchable(args); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(2)
		}
		if outPath != "" {
			fmt.Fprintln(os.Stderr, "watch: --output is not supported with --watch")
			os.Exit(2)
		}
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, profile, err := resolveTheme(opts.theme, opts.color, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		printThemes(os.Stderr)
		os.Exit(2)
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		os.Exit(2)
	}

	job := renderJob{
		args:   args,
		writer: writer,
		width:  max(opts.width, 0),
		theme:  theme,
		source: source,
		options: []easymark.RenderOption{
			easymark.WithColorProfile(profile),
			easymark.WithDefaultWidth(terminalWidth(defaultWidth)),
			easymark.WithOSC8(osc8),
			easymark.WithSoftWrap(opts.softWrap),
			easymark.WithCodeHighlight(opts.highlight),
			easymark.WithChromaStyle(opts.codeStyle),
			easymark.WithFrontMatter(opts.frontMatter),
		},
	}

	if watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runWatch(ctx, job); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := job.run(); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

type renderJob struct {
	args    []string
	writer  io.Writer
	width   int
	theme   easymark.Theme
	source  bool
	options []easymark.RenderOption
}

func (j renderJob) run() error {
	reader, closer, err := openInputs(j.args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	if j.source {
		return easymark.HighlightSource(easymark.HighlightRequest{
			Reader:  reader,
			Writer:  j.writer,
			Theme:   j.theme,
			Options: j.options,
		})
	}
	return easymark.Render(easymark.RenderRequest{
		Reader:  reader,
		Writer:  j.writer,
		Width:   j.width,
		Theme:   j.theme,
		Options: j.options,
	})
}

// runWatch renders once, then again after every change until ctx is done.
// Render failures are reported and watching continues.
func runWatch(ctx context.Context, job renderJob) error {
	w, err := watcher.New(watcher.DefaultConfig(watchPaths(job.args)...))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()
	changes, err := w.Start(ctx)
	if err != nil {
		return err
	}
	redraw := func() {
		_, _ = io.WriteString(job.writer, clearScreen)
		if err := job.run(); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
		}
	}
	redraw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			redraw()
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}

func checkWatchable(args []string) error {
	if len(args) == 0 {
		return errors.New("needs at least one input file")
	}
	for _, raw := range args {
		u, err := url.Parse(raw)
		if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
			return fmt.Errorf("cannot watch URL %s", raw)
		}
	}
	return nil
}

// watchPaths maps inputs to the files they read, resolving file:// URLs.
func watchPaths(args []string) []string {
	paths := make([]string, 0, len(args))
	for _, raw := range args {
		raw = strings.TrimSpace(raw)
		if u, err := url.Parse(raw); err == nil && strings.EqualFold(u.Scheme, "file") {
			raw = fileURLPath(u)
		}
		paths = append(paths, normalizePath(raw))
	}
	return paths
}

func fileURLPath(u *url.URL) string {
	path := u.Path
	if path == "" {
		path = u.Host
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	return path
}

func printThemes(w io.Writer) {
	for _, name := range easymark.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

// resolveTheme returns the theme for name and the color profile of w. An
// empty name yields a nil theme so the document's front matter can pick one.
func resolveTheme(name, color string, w io.Writer) (easymark.Theme, termenv.Profile, error) {
	var profile termenv.Profile
	switch strings.ToLower(strings.TrimSpace(color)) {
	case "", "auto":
		profile = termenv.NewOutput(w).EnvColorProfile()
	case "always":
		profile = termenv.TrueColor
	case "never":
		return easymark.BoringTheme(), termenv.Ascii, nil
	default:
		return nil, profile, fmt.Errorf("invalid --color %q: expected auto|always|never", color)
	}
	if name == "" {
		return nil, profile, nil
	}
	theme, ok := easymark.ThemeForProfile(name, profile)
	if !ok {
		return nil, profile, fmt.Errorf("unknown theme %q", name)
	}
	return theme, profile, nil
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return easymark.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				body, err := easymark.Fetch(context.Background(), nil, raw)
				if err != nil {
					return nil, nil, err
				}
				return body, body, nil
			}}, nil
		case "file":
			path := fileURLPath(u)
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
