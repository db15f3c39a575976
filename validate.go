package easymark

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	control := 0
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b < 0x09:
		return true
	case b > 0x0D && b < 0x20:
		return true
	case b == 0x7F:
		return true
	}
	return false
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitize normalizes line endings to "\n" and drops other control runes so
// they cannot reach the terminal.
func sanitize(src string) string {
	clean := true
	for i := 0; i < len(src); i++ {
		if src[i] < 0x80 && isControlRune(rune(src[i])) {
			clean = false
			break
		}
	}
	if clean {
		return src
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(src))
	for _, r := range src {
		if isControlRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
