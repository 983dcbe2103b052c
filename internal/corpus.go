package internal

import (
	"errors"
	"sort"

	"go.uber.org/zap"
)

// ErrEmptyCorpus is returned when no scanned wordlist yields an accepted word.
var ErrEmptyCorpus = errors.New("no words to sample from: corpus is empty")

// Corpus is the immutable, sorted word pool a run samples from.
type Corpus struct {
	// Words are unique, lower-cased and sorted lexicographically.
	Words []string
	// Rejected lines, longest first. Only filled when requested.
	Rejected []string
	// Files that were read successfully.
	Files []string
}

// Size returns the number of sampleable words.
func (c *Corpus) Size() int { return len(c.Words) }

// CollectFiles discovers matching files in every root, in root order.
// Unreadable roots are logged and skipped.
func CollectFiles(roots []string, filter NameFilter, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}
	var files []string
	for _, root := range roots {
		logger.Info("searching for wordlists",
			zap.String("path", root),
			zap.String("filter", filter.String()))
		found, err := DiscoverFiles(root, filter)
		if err != nil {
			if isNotExist(err) {
				logger.Debug("search path does not exist", zap.String("path", root))
			} else {
				logger.Error("cannot list search path", zap.String("path", root), zap.Error(err))
			}
			continue
		}
		for _, f := range found {
			logger.Info("found wordlist", zap.String("file", f))
		}
		files = append(files, found...)
	}
	return files
}

// Assemble loads every file and merges the accepted words into a sorted,
// deduplicated corpus. A file that cannot be read contributes nothing. When
// keepRejected is set the filtered-out lines are kept for inspection; they
// never enter Words.
func Assemble(files []string, loader *Loader, keepRejected bool) (*Corpus, error) {
	accepted := make(map[string]struct{})
	rejected := make(map[string]struct{})
	corpus := &Corpus{}

	for _, f := range files {
		wl, err := loader.Load(f)
		if err != nil {
			loader.logger.Error("skipping wordlist", zap.String("file", f), zap.Error(err))
			continue
		}
		corpus.Files = append(corpus.Files, f)
		for w := range wl.Accepted {
			accepted[w] = struct{}{}
		}
		if keepRejected {
			for w := range wl.Rejected {
				rejected[w] = struct{}{}
			}
		}
	}

	if keepRejected {
		corpus.Rejected = sortByLengthDesc(rejected)
	}
	if len(accepted) == 0 {
		return corpus, ErrEmptyCorpus
	}

	corpus.Words = make([]string, 0, len(accepted))
	for w := range accepted {
		corpus.Words = append(corpus.Words, w)
	}
	sort.Strings(corpus.Words)
	return corpus, nil
}

// sortByLengthDesc orders longest first, ties broken lexicographically so
// the listing is stable between runs.
func sortByLengthDesc(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
