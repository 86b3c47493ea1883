// Package types defines the fixed-size value types shared by the wallet
// generator's encoding layers.
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashSize is the length of a SHA-256 digest in bytes.
const HashSize = 32

// Hash160Size is the length of a RIPEMD160(SHA256(x)) digest in bytes.
const Hash160Size = 20

// Hash represents a 256-bit hash value.
type Hash [HashSize]byte

// Hash160 represents a 160-bit public key hash.
type Hash160 [Hash160Size]byte

// IsZero returns true if the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// MarshalJSON encodes the hash as a hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a hex string into a hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*h = Hash{}
		return nil
	}
	decoded, err := HexToHash(s)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// HexToHash converts a hex string to a Hash.
// Returns an error if the string is not exactly 64 hex characters.
func HexToHash(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// IsZero returns true if the hash is all zeros.
func (h Hash160) IsZero() bool {
	return h == Hash160{}
}

// String returns the hex-encoded hash.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash160) Bytes() []byte {
	b := make([]byte, Hash160Size)
	copy(b, h[:])
	return b
}

// HexToHash160 converts a 40-character hex string to a Hash160.
func HexToHash160(s string) (Hash160, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash160{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != Hash160Size {
		return Hash160{}, fmt.Errorf("hash160 must be %d bytes, got %d", Hash160Size, len(b))
	}
	var h Hash160
	copy(h[:], b)
	return h, nil
}
