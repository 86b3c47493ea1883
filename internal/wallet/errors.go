package wallet

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/address"
)

// Derivation and codec errors. Callers match them with errors.Is.
var (
	ErrInvalidStrength    = errors.New("entropy strength must be 128, 160, 192, 224 or 256 bits")
	ErrInvalidSeedLength  = errors.New("seed must be between 16 and 64 bytes")
	ErrInvalidMasterKey   = errors.New("seed produces an unusable master key")
	ErrInvalidIndex       = errors.New("child index must be below 2^31")
	ErrPrivateKeyRequired = errors.New("hardened derivation requires a private key")
	ErrInvalidChildKey    = errors.New("child index produces an unusable key")
	ErrDepthOverflow      = errors.New("derivation depth exceeds 255")
	ErrInvalidPath        = errors.New("invalid derivation path")
	ErrInvalidWordCount   = errors.New("mnemonic must have 12, 15, 18, 21 or 24 words")
	ErrUnknownWord        = errors.New("word not in wordlist")
)

// Encoding errors shared with the address package.
var (
	ErrChecksumMismatch = address.ErrChecksumMismatch
	ErrInvalidLength    = address.ErrInvalidLength
	ErrInvalidVersion   = address.ErrInvalidVersion
	ErrInvalidKeyData   = address.ErrInvalidKeyData
)

// PathError records which segment of a derivation path failed.
type PathError struct {
	Position int
	Step     PathStep
	Err      error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("derive path segment %d (%s): %v", e.Position, e.Step, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
