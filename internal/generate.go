package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Generator runs the whole pipeline: discover wordlists, assemble the
// corpus, then sample and report PasswordCount passphrases.
type Generator struct {
	Settings Settings
	Out      io.Writer
	Styler   Styler
	Logger   *zap.Logger

	// NewSource overrides the secure random source when set.
	NewSource func() (IndexSource, error)
}

// Run generates the configured passphrases and writes one line per
// passphrase to Out, in generation order.
func (g *Generator) Run() error {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := g.Settings.Config

	if cfg.FillString == "" {
		logger.Warn("fill string is empty, this reduces entropy")
	}

	if cfg.WordlistDir != "" {
		if info, err := os.Stat(cfg.WordlistDir); err != nil || !info.IsDir() {
			logger.Warn("wordlist directory is not a directory, ignoring", zap.String("path", cfg.WordlistDir))
		}
	}
	roots := SearchRoots(cfg.InstallDir, cfg.WordlistDir)
	files := CollectFiles(roots, g.Settings.Names, logger)

	corpus, err := Assemble(files, NewLoader(g.Settings.Lines, logger), cfg.Debug)
	if cfg.Debug && len(corpus.Rejected) > 0 {
		logger.Debug("filtered lines (longest first)", zap.String("lines", strings.Join(corpus.Rejected, ", ")))
	}
	if err != nil {
		return err
	}
	logger.Info("corpus assembled",
		zap.Int("files", len(corpus.Files)),
		zap.Int("words", corpus.Size()))

	if err := CheckWordCount(corpus.Size(), cfg.WordCount); err != nil {
		return err
	}

	opts := []SamplerOption{}
	if g.NewSource != nil {
		opts = append(opts, WithSourceFactory(g.NewSource))
	}
	if cfg.Debug {
		opts = append(opts, WithDrawLogging(logger))
	}
	sampler := NewSampler(corpus.Words, opts...)

	for i := 0; i < cfg.PasswordCount; i++ {
		words, err := sampler.Sample(cfg.WordCount)
		if err != nil {
			return err
		}
		report := NewReport(words, cfg.FillString, corpus.Size())
		if _, err := fmt.Fprintln(g.Out, report.Styled(g.Styler)); err != nil {
			return fmt.Errorf("write passphrase: %w", err)
		}
		if cfg.QR {
			code, err := RenderQR(report.Joined)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(g.Out, code); err != nil {
				return fmt.Errorf("write qr: %w", err)
			}
		}
	}
	return nil
}
