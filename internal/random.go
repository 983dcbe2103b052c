package internal

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/chacha20"
)

// DefaultWarmup is the number of keystream bytes discarded after seeding.
const DefaultWarmup = 512

// ErrRandomSource wraps any failure to seed or read the random source.
var ErrRandomSource = errors.New("secure random source unavailable")

// IndexSource yields uniformly distributed indices in [0, n).
type IndexSource interface {
	Index(n int) (int, error)
}

// SecureSource is a ChaCha20 keystream keyed from a fresh entropy read.
// It is not safe for concurrent use; build one per sampling batch.
type SecureSource struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// NewSecureSource seeds a ChaCha20 stream from entropy (crypto/rand when
// nil) and discards warmup bytes of keystream before first use.
func NewSecureSource(entropy io.Reader, warmup int) (*SecureSource, error) {
	if entropy == nil {
		entropy = crand.Reader
	}
	seed := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(entropy, seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	s := &SecureSource{cipher: c}
	if warmup > 0 {
		discard := make([]byte, warmup)
		s.cipher.XORKeyStream(discard, discard)
	}
	return s, nil
}

// NewSecureIndexSource is the IndexSource factory used by the sampler.
func NewSecureIndexSource() (IndexSource, error) {
	return NewSecureSource(nil, DefaultWarmup)
}

func (s *SecureSource) next64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Index returns an unbiased value in [0, n). Values from the top partial
// bucket of the 64-bit range are redrawn.
func (s *SecureSource) Index(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("index range must be positive, got %d", n)
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := s.next64()
		if v < limit {
			return int(v % bound), nil
		}
	}
}
