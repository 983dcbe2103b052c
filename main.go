// PhraseRiot — wordlist passphrase generator
//
// Pipeline:
// - Discover wordlists (*.txt, *.txt.gz, *.txt.zip by default) next to the
//   binary and in --wordlistdir
// - Unwrap gzip/zstd/zip/bzip2 content; anything else is read as plain text
// - Strip frequency-rank prefixes ("1234 apple" → "apple"), keep lines that
//   fully match --matchregex and are at least --minwordlength long
// - Sort and deduplicate, then draw --wordcount distinct words per
//   passphrase from a freshly seeded ChaCha20 stream
//
// Entropy is wordcount × log2(corpus size), truncated to two decimals.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"phraseriot/internal"
)

var version = "dev"

func usage(w io.Writer, st internal.Styler, flags *pflag.FlagSet) {
	prog := filepath.Base(os.Args[0])

	fmt.Fprintln(w, st.Banner(version))
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s %s\n", prog, st.Style("[options]", internal.Cyan))
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.Style("Flags:", internal.Bold, internal.Blue))
	fmt.Fprint(w, flags.FlagUsages())
	fmt.Fprintln(w)

	fmt.Fprintln(w, st.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s --wordlistdir ./wordlists -w 6 -f - -p 3\n", prog)
	fmt.Fprintf(w, "  %s --matchregex '[a-z]{4,8}' --minwordlength 4\n", prog)
	fmt.Fprintln(w, st.Style("Environment variables PHRASERIOT_* set defaults; flags win.", internal.Gray))
}

func newFlagSet(cfg *internal.Config) *pflag.FlagSet {
	flags := pflag.NewFlagSet("phraseriot", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)

	flags.StringVar(&cfg.WordlistDir, "wordlistdir", cfg.WordlistDir, "Extra directory to scan for wordlists")
	flags.StringSliceVar(&cfg.FileGlobs, "fileSuffixFilter", cfg.FileGlobs, "Wordlist file name globs, case-insensitive")
	flags.StringVar(&cfg.MatchPattern, "matchregex", cfg.MatchPattern, "Lines must fully match this regex (see --debug for rejects)")
	flags.IntVar(&cfg.MinWordLength, "minwordlength", cfg.MinWordLength, "Minimum accepted word length")
	flags.IntVarP(&cfg.WordCount, "wordcount", "w", cfg.WordCount, "Words per passphrase")
	flags.StringVarP(&cfg.FillString, "fillString", "f", cfg.FillString, "String put between words in the joined form")
	flags.IntVarP(&cfg.PasswordCount, "pwcount", "p", cfg.PasswordCount, "Number of passphrases to generate")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "List rejected lines and log every draw")
	flags.BoolVar(&cfg.QR, "qr", cfg.QR, "Print a QR code of each joined passphrase")
	flags.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	flags.Bool("version", false, "Print version and exit")
	flags.BoolP("help", "h", false, "Print usage and exit")
	return flags
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := internal.LoadConfig(nil)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	flags := newFlagSet(&cfg)
	if err := flags.Parse(args); err != nil {
		st := internal.StylerFor(stderr, cfg.NoColor)
		fmt.Fprintln(stderr, st.Style("error: "+err.Error(), internal.Red))
		usage(stderr, st, flags)
		return 2
	}
	if help, _ := flags.GetBool("help"); help {
		usage(stdout, internal.StylerFor(stdout, cfg.NoColor), flags)
		return 0
	}
	if v, _ := flags.GetBool("version"); v {
		fmt.Fprintln(stdout, version)
		return 0
	}
	if flags.NArg() > 0 {
		st := internal.StylerFor(stderr, cfg.NoColor)
		fmt.Fprintln(stderr, st.Style(fmt.Sprintf("error: unexpected arguments: %v", flags.Args()), internal.Red))
		usage(stderr, st, flags)
		return 2
	}

	logger := internal.NewLogger(stderr, cfg.Debug)
	defer func() { _ = logger.Sync() }()

	if dir, err := internal.ExecutableDir(); err == nil {
		cfg.InstallDir = dir
	} else {
		logger.Warn("cannot locate executable directory", zap.Error(err))
	}

	settings, err := cfg.Compile()
	if err != nil {
		st := internal.StylerFor(stderr, cfg.NoColor)
		fmt.Fprintln(stderr, st.Style("error: "+err.Error(), internal.Red))
		usage(stderr, st, flags)
		return 2
	}

	gen := &internal.Generator{
		Settings: settings,
		Out:      stdout,
		Styler:   internal.StylerFor(stdout, cfg.NoColor),
		Logger:   logger,
	}
	if err := gen.Run(); err != nil {
		logger.Error("cannot generate passphrases", zap.Error(err))
		if errors.Is(err, internal.ErrCorpusTooSmall) {
			return 2
		}
		return 1
	}
	return 0
}
