package internal

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrCorpusTooSmall means the corpus cannot supply enough distinct words.
	ErrCorpusTooSmall = errors.New("word count exceeds corpus size")
	// ErrInvalidWordCount rejects negative word counts.
	ErrInvalidWordCount = errors.New("word count must not be negative")
)

// CheckWordCount fails when wordCount distinct words cannot be drawn from a
// corpus of corpusSize.
func CheckWordCount(corpusSize, wordCount int) error {
	if wordCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWordCount, wordCount)
	}
	if wordCount > corpusSize {
		return fmt.Errorf("%w: need %d distinct words, corpus has %d", ErrCorpusTooSmall, wordCount, corpusSize)
	}
	return nil
}

// Sampler draws distinct words from a corpus.
type Sampler struct {
	words     []string
	newSource func() (IndexSource, error)
	logger    *zap.Logger
	debug     bool
}

// SamplerOption customises a Sampler.
type SamplerOption func(*Sampler)

// WithSourceFactory replaces the secure random source, mainly for tests.
func WithSourceFactory(f func() (IndexSource, error)) SamplerOption {
	return func(s *Sampler) { s.newSource = f }
}

// WithDrawLogging logs every draw at debug level.
func WithDrawLogging(logger *zap.Logger) SamplerOption {
	return func(s *Sampler) {
		s.logger = logger
		s.debug = logger != nil
	}
}

// NewSampler returns a Sampler over words, which must not be modified
// afterwards.
func NewSampler(words []string, opts ...SamplerOption) *Sampler {
	s := &Sampler{
		words:     words,
		newSource: NewSecureIndexSource,
		logger:    zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Sample returns wordCount distinct words in draw order. Every call seeds a
// fresh random source. Drawing an already chosen word is not an error; the
// draw is simply repeated.
func (s *Sampler) Sample(wordCount int) ([]string, error) {
	if err := CheckWordCount(len(s.words), wordCount); err != nil {
		return nil, err
	}
	if wordCount == 0 {
		return []string{}, nil
	}

	src, err := s.newSource()
	if err != nil {
		return nil, err
	}

	chosen := make([]string, 0, wordCount)
	seen := make(map[string]struct{}, wordCount)
	for len(chosen) < wordCount {
		i, err := src.Index(len(s.words))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		w := s.words[i]
		if s.debug {
			s.logger.Debug("draw", zap.Int("index", i), zap.String("word", w))
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		chosen = append(chosen, w)
	}
	return chosen, nil
}
