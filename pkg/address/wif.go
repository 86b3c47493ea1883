package address

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// compressMagic marks a WIF whose public key is to be serialized compressed.
const compressMagic = 0x01

// WIF is a decoded Wallet Import Format private key.
type WIF struct {
	PrivKey    []byte
	Compressed bool
	Version    byte
}

// EncodeWIF encodes a 32-byte private key for the given network.
func EncodeWIF(privKey []byte, params *network.Params, compressed bool) (string, error) {
	if len(privKey) != crypto.PrivateKeySize {
		return "", fmt.Errorf("%w: private key is %d bytes", ErrInvalidLength, len(privKey))
	}
	payload := make([]byte, 0, crypto.PrivateKeySize+1)
	payload = append(payload, privKey...)
	if compressed {
		payload = append(payload, compressMagic)
	}
	s := EncodeBase58Check([]byte{params.PrivateKeyID}, payload)
	zero(payload)
	return s, nil
}

// DecodeWIF parses a WIF string and checks that it belongs to the given network.
func DecodeWIF(s string, params *network.Params) (*WIF, error) {
	body, err := DecodeBase58Check(s)
	if err != nil {
		return nil, err
	}

	w := &WIF{Version: body[0]}
	payload := body[1:]
	switch {
	case len(payload) == crypto.PrivateKeySize:
	case len(payload) == crypto.PrivateKeySize+1 && payload[crypto.PrivateKeySize] == compressMagic:
		w.Compressed = true
		payload = payload[:crypto.PrivateKeySize]
	default:
		return nil, fmt.Errorf("%w: WIF payload is %d bytes", ErrInvalidLength, len(payload))
	}
	if w.Version != params.PrivateKeyID {
		return nil, fmt.Errorf("%w: %#02x is not a %s WIF version", ErrInvalidVersion, w.Version, params.Name)
	}
	if !crypto.IsValidPrivateKey(payload) {
		return nil, fmt.Errorf("%w: private key out of range", ErrInvalidKeyData)
	}
	w.PrivKey = append([]byte(nil), payload...)
	zero(body)
	return w, nil
}

// String re-encodes the key.
func (w *WIF) String() string {
	payload := append([]byte(nil), w.PrivKey...)
	if w.Compressed {
		payload = append(payload, compressMagic)
	}
	return EncodeBase58Check([]byte{w.Version}, payload)
}

// PublicKey returns the serialized public key matching the compression flag.
func (w *WIF) PublicKey() ([]byte, error) {
	key, err := crypto.PrivateKeyFromBytes(w.PrivKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyData, err)
	}
	defer key.Zero()
	if w.Compressed {
		return key.PublicKey(), nil
	}
	return key.UncompressedPublicKey(), nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
