package internal

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the resolved run configuration. Defaults and environment
// overrides come from the struct tags; command-line flags are bound onto
// the same value afterwards and win over both.
type Config struct {
	WordlistDir   string   `env:"PHRASERIOT_WORDLISTDIR"`
	FileGlobs     []string `env:"PHRASERIOT_FILE_SUFFIX_FILTER" envSeparator:"," envDefault:"*.txt,*.txt.zip,*.txt.gz"`
	MatchPattern  string   `env:"PHRASERIOT_MATCH_REGEX" envDefault:"(?i)[a-z]*[aeuioy][a-z]*"`
	MinWordLength int      `env:"PHRASERIOT_MIN_WORD_LENGTH" envDefault:"3"`
	WordCount     int      `env:"PHRASERIOT_WORD_COUNT" envDefault:"5"`
	FillString    string   `env:"PHRASERIOT_FILL_STRING"`
	PasswordCount int      `env:"PHRASERIOT_PW_COUNT" envDefault:"10"`
	Debug         bool     `env:"PHRASERIOT_DEBUG"`
	QR            bool     `env:"PHRASERIOT_QR"`
	NoColor       bool     `env:"PHRASERIOT_NO_COLOR"`

	// InstallDir is the first search root, normally the executable's
	// directory. It is never read from the environment.
	InstallDir string
}

// ConfigError marks invalid user input; the CLI prints usage for it.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "invalid configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(format string, args ...any) error {
	return &ConfigError{Err: fmt.Errorf(format, args...)}
}

// DefaultConfig returns the built-in defaults, ignoring the environment.
func DefaultConfig() Config {
	cfg, err := LoadConfig(map[string]string{})
	if err != nil {
		// Only reachable if the struct tags themselves are broken.
		panic(err)
	}
	return cfg
}

// LoadConfig applies defaults and the given environment. A nil environ
// reads the process environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	return cfg, nil
}

// Validate checks value ranges. Pattern and glob syntax are checked by
// Compile.
func (c Config) Validate() error {
	switch {
	case c.MinWordLength < 0:
		return configErrorf("minimum word length must not be negative, got %d", c.MinWordLength)
	case c.WordCount < 1:
		return configErrorf("word count must be at least 1, got %d", c.WordCount)
	case c.PasswordCount < 0:
		return configErrorf("passphrase count must not be negative, got %d", c.PasswordCount)
	case len(c.FileGlobs) == 0:
		return configErrorf("at least one file filter is required")
	}
	return nil
}

// Settings is a validated Config with its patterns compiled.
type Settings struct {
	Config
	Lines LineFilter
	Names NameFilter
}

// Compile validates c and compiles its patterns.
func (c Config) Compile() (Settings, error) {
	if err := c.Validate(); err != nil {
		return Settings{}, err
	}
	lines, err := NewLineFilter(c.MatchPattern, c.MinWordLength)
	if err != nil {
		return Settings{}, &ConfigError{Err: err}
	}
	names, err := NewNameFilter(c.FileGlobs)
	if err != nil {
		return Settings{}, &ConfigError{Err: err}
	}
	return Settings{Config: c, Lines: lines, Names: names}, nil
}

// IsConfigError reports whether err stems from invalid user input.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
