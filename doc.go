// Package easymark tokenizes and renders EasyMark, a small line-oriented
// markup, for terminal display.
//
// The Tokenizer is a single forward pass over the input. It carries only
// the active inline style and whether the cursor is at the start of a line,
// and it never looks past the end of the current line. Malformed markup is
// never an error: it degrades to plain text.
//
// Items flow through a LineReducer, which groups them into Lines, and then
// into a Display. TerminalDisplay is the built-in Display; it wraps text to
// a width and styles it with a Theme.
//
// Example:
//
//	err := easymark.Render(easymark.RenderRequest{
//		Reader: strings.NewReader("# Hello\n- *bold* and /italic/\n"),
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  easymark.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Callers that only need tokens can range over Items:
//
//	for it := range easymark.Items(src) {
//		fmt.Println(it)
//	}
package easymark
