package wallet

import (
	"crypto/sha512"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

// seedIterations is the PBKDF2 round count fixed by BIP-39.
const seedIterations = 2048

// SeedFromMnemonic derives a 512-bit seed from a mnemonic and optional
// passphrase using PBKDF2-HMAC-SHA512 as specified in BIP-39. The mnemonic
// checksum is not checked; any string yields a seed.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	defer log.Benchmark("seed derivation")()
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte("mnemonic" + norm.NFKD.String(passphrase))
	seed := pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
	zeroBytes(password)
	return seed
}

// SeedFromValidMnemonic checks the mnemonic against wl (nil for English)
// before deriving the seed.
func SeedFromValidMnemonic(mnemonic, passphrase string, wl *Wordlist) ([]byte, error) {
	entropy, err := MnemonicToEntropy(mnemonic, wl)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	zeroBytes(entropy)
	return SeedFromMnemonic(mnemonic, passphrase), nil
}
