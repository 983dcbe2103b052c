package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameFilter_Match(t *testing.T) {
	t.Parallel()

	f, err := NewNameFilter(DefaultFileGlobs)
	require.NoError(t, err)

	for _, name := range []string{"words.txt", "WORDS.TXT", "en.txt.gz", "de.Txt.Zip"} {
		assert.True(t, f.Match(name), name)
	}
	for _, name := range []string{"words.csv", "words.txt.bak", "words.gz", "txt"} {
		assert.False(t, f.Match(name), name)
	}
	assert.Equal(t, "*.txt, *.txt.zip, *.txt.gz", f.String())
}

func TestNewNameFilter_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewNameFilter(nil)
	require.Error(t, err)

	_, err = NewNameFilter([]string{" ", ""})
	require.Error(t, err)

	_, err = NewNameFilter([]string{"[a-"})
	require.Error(t, err)
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("berry\n"))
	writeFile(t, dir, "a.TXT", []byte("apple\n"))
	writeFile(t, dir, "c.txt.gz", []byte("cocoa\n"))
	writeFile(t, dir, "notes.md", []byte("skip\n"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.txt"), 0o755))
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "deep.txt", []byte("deep\n"))

	f, err := NewNameFilter(DefaultFileGlobs)
	require.NoError(t, err)

	files, err := DiscoverFiles(dir, f)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.TXT"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.txt.gz"),
	}, files)
}

func TestDiscoverFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	f, err := NewNameFilter(DefaultFileGlobs)
	require.NoError(t, err)

	_, err = DiscoverFiles(filepath.Join(t.TempDir(), "missing"), f)
	require.Error(t, err)
	assert.True(t, isNotExist(err))
}

func TestSearchRoots(t *testing.T) {
	t.Parallel()

	install := t.TempDir()
	extra := t.TempDir()
	file := writeFile(t, extra, "words.txt", []byte("apple\n"))

	assert.Equal(t, []string{install, extra}, SearchRoots(install, extra))
	assert.Equal(t, []string{install}, SearchRoots(install, ""))
	assert.Equal(t, []string{install}, SearchRoots(install, file), "a file is not a search root")
	assert.Equal(t, []string{install}, SearchRoots(install, filepath.Join(extra, "missing")))
	assert.Equal(t, []string{install}, SearchRoots(install, install), "duplicates are scanned once")
	assert.Equal(t, []string{extra}, SearchRoots("", extra))
}
