package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordlistDir(t *testing.T, words string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte(words), 0o644))
	return dir
}

func TestRun_Generates(t *testing.T) {
	dir := wordlistDir(t, "apple\nberry\ncocoa\ndates\nxzq\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--wordlistdir", dir, "-w", "2", "-p", "3", "-f", "-"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "[ "), line)
		assert.Contains(t, line, "length 10, entropy 4.00")
	}
	assert.Contains(t, stderr.String(), "found wordlist")
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "--wordlistdir")
	assert.Contains(t, stdout.String(), "--fileSuffixFilter")
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"--version"}, &stdout, &stderr))
	assert.Equal(t, version+"\n", stdout.String())
}

func TestRun_ConfigErrors(t *testing.T) {
	dir := wordlistDir(t, "apple\nberry\ncocoa\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
		{"bad int", []string{"--wordcount", "many"}, "invalid argument"},
		{"bad regex", []string{"--matchregex", "(oops"}, "invalid match pattern"},
		{"zero words", []string{"-w", "0"}, "word count must be at least 1"},
		{"positional", []string{"extra"}, "unexpected arguments"},
		{"too many words", []string{"--wordlistdir", dir, "-w", "4"}, "word count exceeds corpus size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 2, run(tt.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_EmptyCorpus(t *testing.T) {
	dir := wordlistDir(t, "xzq\n123\n")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--wordlistdir", dir}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "corpus is empty")
	assert.Empty(t, stdout.String())
}
