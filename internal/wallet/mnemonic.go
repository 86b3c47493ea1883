// Package wallet implements BIP-39 mnemonics, BIP-32 hierarchical
// deterministic keys and the pipeline that turns fresh entropy into a
// ready-to-use address and private key.
package wallet

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// bitsPerWord is the width of one wordlist index.
const bitsPerWord = 11

// GenerateMnemonic creates a new English mnemonic with the given entropy
// strength using the default entropy source.
func GenerateMnemonic(bits int) (string, error) {
	return NewMnemonic(nil, bits, nil)
}

// NewMnemonic draws entropy from src and encodes it with wl.
// A nil src uses DefaultEntropySource and a nil wl uses English.
func NewMnemonic(src EntropySource, bits int, wl *Wordlist) (string, error) {
	entropy, err := NewEntropy(src, bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	defer zeroBytes(entropy)
	mnemonic, err := EntropyToMnemonic(entropy, wl)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// EntropyToMnemonic encodes entropy followed by its SHA-256 checksum bits
// as 11-bit wordlist indices.
func EntropyToMnemonic(entropy []byte, wl *Wordlist) (string, error) {
	if wl == nil {
		wl = English
	}
	entBits := len(entropy) * 8
	if !ValidStrength(entBits) {
		return "", fmt.Errorf("%w: got %d", ErrInvalidStrength, entBits)
	}

	csBits := entBits / 32
	hash := sha256.Sum256(entropy)
	buf := make([]byte, len(entropy)+1)
	copy(buf, entropy)
	buf[len(entropy)] = hash[0]
	defer zeroBytes(buf)

	count := (entBits + csBits) / bitsPerWord
	words := make([]string, count)
	for i := range words {
		words[i] = wl.Word(readBits(buf, i*bitsPerWord, bitsPerWord))
	}
	return strings.Join(words, wl.Separator), nil
}

// MnemonicToEntropy decodes a mnemonic and verifies its checksum.
// A nil wl uses English.
func MnemonicToEntropy(mnemonic string, wl *Wordlist) ([]byte, error) {
	if wl == nil {
		wl = English
	}
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, len(words))
	}

	totalBits := len(words) * bitsPerWord
	csBits := totalBits / 33
	entBits := totalBits - csBits

	buf := make([]byte, (totalBits+7)/8)
	defer zeroBytes(buf)
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q (position %d)", ErrUnknownWord, w, i+1)
		}
		writeBits(buf, i*bitsPerWord, bitsPerWord, idx)
	}

	entropy := make([]byte, entBits/8)
	copy(entropy, buf)
	hash := sha256.Sum256(entropy)
	want := hash[0] >> (8 - csBits)
	got := byte(readBits(buf, entBits, csBits))
	if got != want {
		zeroBytes(entropy)
		return nil, fmt.Errorf("mnemonic %w", ErrChecksumMismatch)
	}
	return entropy, nil
}

// ValidateMnemonic checks if an English mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	entropy, err := MnemonicToEntropy(mnemonic, nil)
	if err != nil {
		return false
	}
	zeroBytes(entropy)
	return true
}

// readBits returns n bits of buf starting at bit offset off, MSB first.
func readBits(buf []byte, off, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		pos := off + i
		bit := (buf[pos/8] >> (7 - uint(pos%8))) & 1
		v = v<<1 | int(bit)
	}
	return v
}

// writeBits stores the low n bits of v into buf at bit offset off, MSB first.
func writeBits(buf []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if (v>>(n-1-i))&1 == 1 {
			pos := off + i
			buf[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
