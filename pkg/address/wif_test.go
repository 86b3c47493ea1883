package address

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

const wikiPrivKey = "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d"

func TestEncodeWIF_KnownVectors(t *testing.T) {
	priv := mustHex(t, wikiPrivKey)
	tests := []struct {
		name       string
		compressed bool
		want       string
	}{
		{"uncompressed", false, "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ"},
		{"compressed", true, "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeWIF(priv, network.MainNet, tt.compressed)
			if err != nil {
				t.Fatalf("EncodeWIF() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeWIF() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeWIF_MatchesBtcutil(t *testing.T) {
	priv := mustHex(t, wikiPrivKey)
	key, _ := btcec.PrivKeyFromBytes(priv)

	tests := []struct {
		params *network.Params
		net    *chaincfg.Params
	}{
		{network.MainNet, &chaincfg.MainNetParams},
		{network.TestNet, &chaincfg.TestNet3Params},
	}

	for _, tt := range tests {
		for _, compressed := range []bool{true, false} {
			ref, err := btcutil.NewWIF(key, tt.net, compressed)
			if err != nil {
				t.Fatalf("btcutil.NewWIF() error: %v", err)
			}
			got, err := EncodeWIF(priv, tt.params, compressed)
			if err != nil {
				t.Fatalf("EncodeWIF() error: %v", err)
			}
			if got != ref.String() {
				t.Errorf("%s compressed=%v: EncodeWIF() = %s, btcutil = %s", tt.params.Name, compressed, got, ref.String())
			}
		}
	}
}

func TestDecodeWIF_Roundtrip(t *testing.T) {
	priv := mustHex(t, wikiPrivKey)
	for _, params := range []*network.Params{network.MainNet, network.TestNet} {
		for _, compressed := range []bool{true, false} {
			s, err := EncodeWIF(priv, params, compressed)
			if err != nil {
				t.Fatalf("EncodeWIF() error: %v", err)
			}
			w, err := DecodeWIF(s, params)
			if err != nil {
				t.Fatalf("DecodeWIF(%s) error: %v", s, err)
			}
			if !bytes.Equal(w.PrivKey, priv) {
				t.Errorf("PrivKey = %x, want %x", w.PrivKey, priv)
			}
			if w.Compressed != compressed {
				t.Errorf("Compressed = %v, want %v", w.Compressed, compressed)
			}
			if w.Version != params.PrivateKeyID {
				t.Errorf("Version = %#x, want %#x", w.Version, params.PrivateKeyID)
			}
			if w.String() != s {
				t.Errorf("String() = %s, want %s", w.String(), s)
			}
		}
	}
}

func TestWIF_PublicKey(t *testing.T) {
	w, err := DecodeWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ", network.MainNet)
	if err != nil {
		t.Fatalf("DecodeWIF() error: %v", err)
	}
	pub, err := w.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey() error: %v", err)
	}
	_, ref := btcec.PrivKeyFromBytes(mustHex(t, wikiPrivKey))
	if !bytes.Equal(pub, ref.SerializeUncompressed()) {
		t.Errorf("PublicKey() = %x, want %x", pub, ref.SerializeUncompressed())
	}

	w.Compressed = true
	pub, err = w.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey() error: %v", err)
	}
	if !bytes.Equal(pub, ref.SerializeCompressed()) {
		t.Errorf("PublicKey() = %x, want %x", pub, ref.SerializeCompressed())
	}
}

func TestDecodeWIF_Corrupted(t *testing.T) {
	s := "KwdMAjGmerYanjeui5SHS7JkmpZvVipYvB2LJGU1ZxJwYvP98617"
	for i := range s {
		_, err := DecodeWIF(corrupt(s, i), network.MainNet)
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("corrupted at %d: error = %v, want ErrChecksumMismatch", i, err)
		}
	}
}

func TestDecodeWIF_Errors(t *testing.T) {
	priv := mustHex(t, wikiPrivKey)
	mainnet, _ := EncodeWIF(priv, network.MainNet, true)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"wrong network", mainnet, ErrInvalidVersion},
		{"short payload", EncodeBase58Check([]byte{0xef}, priv[:31]), ErrInvalidLength},
		{"bad compression flag", EncodeBase58Check([]byte{0xef}, append(append([]byte(nil), priv...), 0x02)), ErrInvalidLength},
		{"zero key", EncodeBase58Check([]byte{0xef}, make([]byte, 32)), ErrInvalidKeyData},
		{"not base58", "0000", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWIF(tt.input, network.TestNet)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncodeWIF_InvalidLength(t *testing.T) {
	if _, err := EncodeWIF(make([]byte, 31), network.MainNet, true); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("error = %v, want ErrInvalidLength", err)
	}
}
