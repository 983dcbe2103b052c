package internal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Report describes one generated passphrase.
type Report struct {
	Words   []string
	Spaced  string
	Joined  string
	Length  int
	Entropy float64
}

// NewReport joins words and scores them against a corpus of corpusSize.
// Length counts the runes of the words only; separators are excluded.
func NewReport(words []string, fill string, corpusSize int) Report {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w)
	}
	return Report{
		Words:   words,
		Spaced:  strings.Join(words, " "),
		Joined:  strings.Join(words, fill),
		Length:  n,
		Entropy: EntropyBits(corpusSize, len(words)),
	}
}

// Format renders the report as a single output line.
func (r Report) Format() string {
	return fmt.Sprintf("[ %s ] [ %s ] length %d, entropy %s",
		r.Spaced, r.Joined, r.Length, FormatEntropy(r.Entropy))
}

// Styled is Format with emphasis on the passphrase itself.
func (r Report) Styled(st Styler) string {
	return fmt.Sprintf("[ %s ] [ %s ] %s",
		st.Style(r.Spaced, Bold, Cyan),
		st.Style(r.Joined, Bold, Purple),
		st.Style(fmt.Sprintf("length %d, entropy %s", r.Length, FormatEntropy(r.Entropy)), Gray))
}
