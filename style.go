package easymark

import "strings"

// Style is the set of inline formatting flags active for a text run.
//
// Flags are independent: any combination may be set at once. The zero value
// is unstyled text.
type Style struct {
	Heading       bool // # heading
	Quoted        bool // > quoted
	Code          bool // `code`
	Strong        bool // *strong*
	Underline     bool // _underline_
	Strikethrough bool // ~strikethrough~
	Italics       bool // /italics/
	Small         bool // $small$
	Raised        bool // ^raised^
}

// toggle flips the flag bound to an inline delimiter. It reports false for
// bytes that are not toggles.
func (s *Style) toggle(c byte) bool {
	switch c {
	case '*':
		s.Strong = !s.Strong
	case '_':
		s.Underline = !s.Underline
	case '~':
		s.Strikethrough = !s.Strikethrough
	case '/':
		s.Italics = !s.Italics
	case '$':
		s.Small = !s.Small
	case '^':
		s.Raised = !s.Raised
	default:
		return false
	}
	return true
}

// IsZero reports whether no flag is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

func (s Style) String() string {
	if s.IsZero() {
		return "plain"
	}
	flags := [...]struct {
		on   bool
		name string
	}{
		{s.Heading, "heading"},
		{s.Quoted, "quoted"},
		{s.Code, "code"},
		{s.Strong, "strong"},
		{s.Underline, "underline"},
		{s.Strikethrough, "strikethrough"},
		{s.Italics, "italics"},
		{s.Small, "small"},
		{s.Raised, "raised"},
	}
	var b strings.Builder
	for _, f := range flags {
		if !f.on {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('+')
		}
		b.WriteString(f.name)
	}
	return b.String()
}
