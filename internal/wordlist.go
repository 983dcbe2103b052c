package internal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// maxLineBytes bounds a single wordlist line.
const maxLineBytes = 1 << 20

// rankPrefix matches the frequency rank of lists such as "1234 apple".
var rankPrefix = regexp.MustCompile(`^\d+\s+`)

// StripRankPrefix removes a leading run of digits followed by whitespace.
func StripRankPrefix(line string) string {
	if loc := rankPrefix.FindStringIndex(line); loc != nil {
		return line[loc[1]:]
	}
	return line
}

// Wordlist holds the lower-cased lines of one source, split by the filter.
type Wordlist struct {
	Accepted map[string]struct{}
	Rejected map[string]struct{}
}

func newWordlist() Wordlist {
	return Wordlist{
		Accepted: make(map[string]struct{}),
		Rejected: make(map[string]struct{}),
	}
}

// Loader reads wordlist files and classifies their lines.
type Loader struct {
	filter LineFilter
	logger *zap.Logger
}

// NewLoader returns a Loader applying filter. A nil logger discards output.
func NewLoader(filter LineFilter, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{filter: filter, logger: logger}
}

// Load reads path, unwrapping gzip, zstd, zip or bzip2 content when present.
// Content that merely carries a compressed name is read as plain text.
func (l *Loader) Load(path string) (Wordlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Wordlist{}, fmt.Errorf("read wordlist: %w", err)
	}
	if plain, ok := TryDecompress(data); ok {
		l.logger.Debug("decompressed wordlist",
			zap.String("file", path),
			zap.String("container", string(DetectContainer(data))))
		data = plain
	}
	wl, err := l.Read(bytes.NewReader(data))
	if err != nil {
		return Wordlist{}, fmt.Errorf("parse wordlist %s: %w", path, err)
	}
	return wl, nil
}

// Read classifies every line of r. Input is decoded as UTF-8; a leading BOM
// is dropped and invalid sequences become U+FFFD.
func (l *Loader) Read(r io.Reader) (Wordlist, error) {
	wl := newWordlist()
	lower := cases.Lower(language.Und)

	sc := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := StripRankPrefix(sc.Text())
		if line == "" {
			continue
		}
		if l.filter.Accepts(line) {
			wl.Accepted[lower.String(line)] = struct{}{}
		} else {
			wl.Rejected[lower.String(line)] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return Wordlist{}, err
	}
	return wl, nil
}
