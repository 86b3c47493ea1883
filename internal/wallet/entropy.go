package wallet

import (
	"crypto/rand"
	"fmt"
	"io"
)

// EntropySource supplies random bytes. The default is crypto/rand.Reader.
// Sources shared between goroutines must be safe for concurrent reads.
type EntropySource io.Reader

// DefaultEntropySource is the operating system CSPRNG.
var DefaultEntropySource EntropySource = rand.Reader

// Allowed entropy strengths in bits.
const (
	MinEntropyBits     = 128
	MaxEntropyBits     = 256
	DefaultEntropyBits = 128
)

// ValidStrength reports whether bits is an allowed entropy strength.
func ValidStrength(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%32 == 0
}

// NewEntropy reads bits/8 random bytes from src in a single draw.
// A nil src uses DefaultEntropySource.
func NewEntropy(src EntropySource, bits int) ([]byte, error) {
	if !ValidStrength(bits) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStrength, bits)
	}
	if src == nil {
		src = DefaultEntropySource
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(src, entropy); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return entropy, nil
}
