package address

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/types"
)

// NewP2WPKHAddress returns the bech32 native segwit (v0) address for a
// compressed public key.
func NewP2WPKHAddress(pubKey []byte, params *network.Params) (string, error) {
	if len(pubKey) != crypto.CompressedPublicKeySize {
		return "", fmt.Errorf("%w: segwit requires a compressed public key, got %d bytes", ErrInvalidLength, len(pubKey))
	}
	hash := crypto.Hash160(pubKey)
	return types.SegwitEncode(params.Bech32HRP, 0, hash[:])
}

// DecodeP2WPKHAddress returns the key hash committed to by a v0 P2WPKH address.
func DecodeP2WPKHAddress(s string, params *network.Params) (types.Hash160, error) {
	_, program, err := types.SegwitDecode(params.Bech32HRP, s)
	if err != nil {
		return types.Hash160{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(program) != types.Hash160Size {
		return types.Hash160{}, fmt.Errorf("%w: witness program is %d bytes", ErrInvalidLength, len(program))
	}
	var h types.Hash160
	copy(h[:], program)
	return h, nil
}
