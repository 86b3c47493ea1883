package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

func TestSeedFromMnemonic_Vectors(t *testing.T) {
	tests := []struct {
		name       string
		mnemonic   string
		passphrase string
		seed       string
	}{
		{
			name:       "abandon about / TREZOR",
			mnemonic:   "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			passphrase: "TREZOR",
			seed:       "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			name:       "abandon about / non-ASCII latin",
			mnemonic:   "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			passphrase: "p\u00e4ssw\u00f6rd",
			seed:       "f159596e1a257152783ecca3910131fb6496ae4616d76f9b4e060d0e2fead51e2ab2af2c4bb340ce6c683466324af2654b9e31bc05c93ad05025c46a83424485",
		},
		{
			name:       "abandon about / decomposed latin",
			mnemonic:   "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			passphrase: "pa\u0308sswo\u0308rd",
			seed:       "f159596e1a257152783ecca3910131fb6496ae4616d76f9b4e060d0e2fead51e2ab2af2c4bb340ce6c683466324af2654b9e31bc05c93ad05025c46a83424485",
		},
		{
			name:       "abandon about / japanese",
			mnemonic:   "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			passphrase: "\u30d1\u30b9\u30ef\u30fc\u30c9",
			seed:       "f08480d8226982bddbb85db9a5eee0efcff46a26828552fac64a7b491ee4c56b54874508c55faa908064dfedefe5aa7fc985bd13419811c66b51a7c8abcfbc7e",
		},
		{
			name:       "legal winner / TREZOR",
			mnemonic:   "legal winner thank year wave sausage worth useful legal winner thank yellow",
			passphrase: "TREZOR",
			seed:       "2e8905819b8723fe2c1d161860e5ee1830318dbf49a83bd451cfb8440c28bd6fa457fe1296106559a3c80937a1c1069be3a3a5bd381ee6260e8d9739fce1f607",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := SeedFromMnemonic(tt.mnemonic, tt.passphrase)
			if got := hex.EncodeToString(seed); got != tt.seed {
				t.Errorf("SeedFromMnemonic() = %s, want %s", got, tt.seed)
			}
		})
	}
}

// go-bip39 does not apply NFKD, so it only agrees on ASCII input.
func TestSeedFromMnemonic_MatchesBip39(t *testing.T) {
	for _, passphrase := range []string{"", "TREZOR", "correct horse battery staple"} {
		mnemonic, err := GenerateMnemonic(256)
		if err != nil {
			t.Fatalf("GenerateMnemonic() error: %v", err)
		}
		got := SeedFromMnemonic(mnemonic, passphrase)
		want := bip39.NewSeed(mnemonic, passphrase)
		if !bytes.Equal(got, want) {
			t.Errorf("passphrase %q: SeedFromMnemonic() = %x, bip39 = %x", passphrase, got, want)
		}
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	s1 := SeedFromMnemonic(mnemonic, "")
	s2 := SeedFromMnemonic(mnemonic, "")
	if !bytes.Equal(s1, s2) {
		t.Error("same mnemonic should produce same seed")
	}
	if len(s1) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(s1), SeedSize)
	}
}

func TestSeedFromMnemonic_PassphraseChangesSeed(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	s1 := SeedFromMnemonic(mnemonic, "")
	s2 := SeedFromMnemonic(mnemonic, "my secret passphrase")
	if bytes.Equal(s1, s2) {
		t.Error("different passphrases should produce different seeds")
	}
}

func TestSeedFromMnemonic_NoChecksumValidation(t *testing.T) {
	// Not a valid mnemonic, but still stretched into a seed.
	seed := SeedFromMnemonic("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo", "")
	if len(seed) != SeedSize {
		t.Errorf("seed length = %d, want %d", len(seed), SeedSize)
	}
}

func TestSeedFromMnemonic_NFKD(t *testing.T) {
	// "é" precomposed (U+00E9) and decomposed (U+0065 U+0301).
	s1 := SeedFromMnemonic("abandon", "caf\u00e9")
	s2 := SeedFromMnemonic("abandon", "cafe\u0301")
	if !bytes.Equal(s1, s2) {
		t.Error("passphrases differing only in normalization should produce the same seed")
	}
}

func TestSeedFromValidMnemonic(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	seed, err := SeedFromValidMnemonic(mnemonic, "TREZOR", nil)
	if err != nil {
		t.Fatalf("SeedFromValidMnemonic() error: %v", err)
	}
	if !bytes.Equal(seed, SeedFromMnemonic(mnemonic, "TREZOR")) {
		t.Error("SeedFromValidMnemonic should match SeedFromMnemonic")
	}

	_, err = SeedFromValidMnemonic("zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo", "", nil)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("error = %v, want ErrChecksumMismatch", err)
	}
}
