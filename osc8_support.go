package easymark

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8Close = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// DetectOSC8Support returns true if the current environment likely supports
// OSC 8 hyperlinks. EASYMARK_OSC8=0 or 1 overrides detection.
func DetectOSC8Support() bool {
	switch os.Getenv("EASYMARK_OSC8") {
	case "0":
		return false
	case "1":
		return true
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

// osc8Link wraps already styled text in an OSC 8 hyperlink to url.
func osc8Link(url, text string) string {
	return osc8Start + url + osc8Close + text + osc8End
}
