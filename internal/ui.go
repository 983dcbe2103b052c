package internal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// UI helpers
//
// ANSI styling uses Tokyo Night–inspired colors. A Styler is a plain value
// carried by whoever prints; when disabled, Style returns its input
// unchanged, so output piped to files stays clean.

// ANSI escape codes (exported)
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m" // Tokyo Night blue
	Cyan   = "\x1b[38;2;42;195;222m"  // Tokyo Night cyan
	Purple = "\x1b[38;2;187;154;247m" // Tokyo Night purple
	Gray   = "\x1b[38;2;136;146;176m" // Dimmed foreground
	Red    = "\x1b[38;2;247;118;142m" // Tokyo Night red
)

// Styler applies ANSI codes when Enabled.
type Styler struct {
	Enabled bool
}

// Style wraps s with the provided ANSI codes when styling is enabled.
//
// Example:
//
//	st.Style("Hello", Bold, Blue)
func (st Styler) Style(s string, codes ...string) string {
	if !st.Enabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// StylerFor enables color only when w is a terminal and noColor is unset.
func StylerFor(w io.Writer, noColor bool) Styler {
	if noColor {
		return Styler{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return Styler{}
	}
	return Styler{Enabled: term.IsTerminal(int(f.Fd()))}
}

// Banner returns the styled CLI header.
func (st Styler) Banner(version string) string {
	return st.Style("PhraseRiot — wordlist passphrase generator - "+version, Bold, Purple)
}
