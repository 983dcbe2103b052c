package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultFileGlobs selects plain and single-file-compressed text lists.
var DefaultFileGlobs = []string{"*.txt", "*.txt.zip", "*.txt.gz"}

// NameFilter matches file base names against globs, ignoring case.
type NameFilter struct {
	patterns []string
	globs    []glob.Glob
}

// NewNameFilter compiles patterns. At least one pattern is required.
func NewNameFilter(patterns []string) (NameFilter, error) {
	nf := NameFilter{}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return NameFilter{}, fmt.Errorf("invalid file filter %q: %w", p, err)
		}
		nf.patterns = append(nf.patterns, p)
		nf.globs = append(nf.globs, g)
	}
	if len(nf.globs) == 0 {
		return NameFilter{}, errors.New("at least one file filter is required")
	}
	return nf, nil
}

// Match reports whether name matches any pattern.
func (f NameFilter) Match(name string) bool {
	name = strings.ToLower(name)
	for _, g := range f.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func (f NameFilter) String() string {
	return strings.Join(f.patterns, ", ")
}

// DiscoverFiles lists the regular files directly inside root whose names
// match filter, sorted by path. Subdirectories are not descended into.
func DiscoverFiles(root string, filter NameFilter) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !filter.Match(e.Name()) {
			continue
		}
		path := filepath.Join(root, e.Name())
		// Follow symlinks so a linked wordlist still counts as a file.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files, nil
}

// ExecutableDir returns the directory holding the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// SearchRoots returns the directories to scan: installDir first, then
// wordlistDir when it names an existing directory. Empty entries and
// duplicates are dropped.
func SearchRoots(installDir, wordlistDir string) []string {
	var roots []string
	seen := make(map[string]bool, 2)
	add := func(dir string) {
		if dir == "" {
			return
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			abs = filepath.Clean(dir)
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		roots = append(roots, abs)
	}
	add(installDir)
	if wordlistDir != "" {
		if info, err := os.Stat(wordlistDir); err == nil && info.IsDir() {
			add(wordlistDir)
		}
	}
	return roots
}

// isNotExist reports a missing root, which is not worth an error log.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
