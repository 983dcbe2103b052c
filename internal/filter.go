package internal

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// DefaultMatchPattern accepts alphabetic runs containing at least one vowel
// (y counts), case-insensitive. Digits, punctuation and consonant-only
// abbreviations fail it.
const DefaultMatchPattern = `(?i)[a-z]*[aeuioy][a-z]*`

// DefaultMinWordLength is the shortest word accepted by default.
const DefaultMinWordLength = 3

// LineFilter decides whether a candidate line may enter the corpus.
// The compiled pattern is immutable, so a LineFilter is safe to share.
type LineFilter struct {
	pattern   *regexp.Regexp
	source    string
	minLength int
}

// NewLineFilter compiles pattern for whole-line matching. The pattern is
// wrapped as ^(?:pattern)$ so a substring hit never counts.
func NewLineFilter(pattern string, minLength int) (LineFilter, error) {
	if minLength < 0 {
		return LineFilter{}, fmt.Errorf("minimum word length must not be negative, got %d", minLength)
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return LineFilter{}, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	return LineFilter{pattern: re, source: pattern, minLength: minLength}, nil
}

// Accepts reports whether line fully matches the pattern and is at least
// minLength runes long.
func (f LineFilter) Accepts(line string) bool {
	if f.pattern == nil {
		return false
	}
	return utf8.RuneCountInString(line) >= f.minLength && f.pattern.MatchString(line)
}

// Pattern returns the pattern as configured, without the anchors.
func (f LineFilter) Pattern() string { return f.source }

// MinLength returns the configured minimum word length.
func (f LineFilter) MinLength() int { return f.minLength }
