package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator(t *testing.T, mutate func(*Config)) (*Generator, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InstallDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}
	set, err := cfg.Compile()
	require.NoError(t, err)

	var out, logs bytes.Buffer
	return &Generator{
		Settings: set,
		Out:      &out,
		Logger:   NewLogger(&logs, cfg.Debug),
	}, &out, &logs
}

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "fruit.txt", []byte("3 cocoa\n1 apple\n2 berry\nxzq\n"))

	g, out, logs := testGenerator(t, func(c *Config) {
		c.WordlistDir = dir
		c.WordCount = 3
		c.PasswordCount = 2
		c.FillString = "-"
	})
	g.NewSource = scripted(0, 0, 1, 2)

	require.NoError(t, g.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "[ apple berry cocoa ] [ apple-berry-cocoa ] length 15, entropy 4.75", line)
	}
	assert.Contains(t, logs.String(), "corpus assembled")
	assert.NotContains(t, logs.String(), "fill string is empty")
}

func TestGenerator_Run_InstallDirAndWordlistDir(t *testing.T) {
	t.Parallel()

	extra := t.TempDir()
	writeFile(t, extra, "b.txt.gz", gzipBytes(t, "berry\n"))

	g, out, logs := testGenerator(t, func(c *Config) {
		c.WordlistDir = extra
		c.WordCount = 2
		c.PasswordCount = 1
	})
	writeFile(t, g.Settings.InstallDir, "a.txt", []byte("apple\n"))

	require.NoError(t, g.Run())
	line := strings.TrimSpace(out.String())
	assert.True(t, line == "[ apple berry ] [ appleberry ] length 10, entropy 2.00" ||
		line == "[ berry apple ] [ berryapple ] length 10, entropy 2.00", line)
	assert.Contains(t, logs.String(), "fill string is empty")
}

func TestGenerator_Run_EmptyCorpus(t *testing.T) {
	t.Parallel()

	g, out, _ := testGenerator(t, nil)
	require.ErrorIs(t, g.Run(), ErrEmptyCorpus)
	assert.Empty(t, out.String())
}

func TestGenerator_Run_CorpusTooSmall(t *testing.T) {
	t.Parallel()

	g, out, _ := testGenerator(t, nil)
	writeFile(t, g.Settings.InstallDir, "words.txt", []byte("apple\nberry\ncocoa\n"))

	err := g.Run()
	require.ErrorIs(t, err, ErrCorpusTooSmall)
	assert.Empty(t, out.String())
}

func TestGenerator_Run_Debug(t *testing.T) {
	t.Parallel()

	g, _, logs := testGenerator(t, func(c *Config) {
		c.Debug = true
		c.WordCount = 1
		c.PasswordCount = 1
	})
	writeFile(t, g.Settings.InstallDir, "words.txt", []byte("apple\nbcdfghjk\nxzq\n"))
	g.NewSource = scripted(0)

	require.NoError(t, g.Run())
	assert.Contains(t, logs.String(), "filtered lines (longest first)")
	assert.Contains(t, logs.String(), "bcdfghjk, xzq")
	assert.Contains(t, logs.String(), "draw")
}

func TestGenerator_Run_ZeroPassphrases(t *testing.T) {
	t.Parallel()

	g, out, _ := testGenerator(t, func(c *Config) {
		c.PasswordCount = 0
		c.WordCount = 1
	})
	writeFile(t, g.Settings.InstallDir, "words.txt", []byte("apple\n"))

	require.NoError(t, g.Run())
	assert.Empty(t, out.String())
}

func TestGenerator_Run_QR(t *testing.T) {
	t.Parallel()

	g, out, _ := testGenerator(t, func(c *Config) {
		c.QR = true
		c.WordCount = 2
		c.PasswordCount = 1
	})
	writeFile(t, g.Settings.InstallDir, "words.txt", []byte("apple\nberry\n"))

	require.NoError(t, g.Run())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Greater(t, len(lines), 5)
	assert.Contains(t, lines[1], "█")
}
