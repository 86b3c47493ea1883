package address

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/types"
)

// Address is a pay-to-public-key-hash address.
type Address struct {
	version byte
	hash    types.Hash160
}

// NewP2PKHAddress hashes a serialized public key (33-byte compressed or
// 65-byte uncompressed) into a P2PKH address for the given network.
func NewP2PKHAddress(pubKey []byte, params *network.Params) (*Address, error) {
	if len(pubKey) != crypto.CompressedPublicKeySize && len(pubKey) != 65 {
		return nil, fmt.Errorf("%w: public key is %d bytes", ErrInvalidLength, len(pubKey))
	}
	return NewP2PKHAddressFromHash(crypto.Hash160(pubKey), params), nil
}

// NewP2PKHAddressFromHash wraps an existing HASH160.
func NewP2PKHAddressFromHash(hash types.Hash160, params *network.Params) *Address {
	return &Address{version: params.PubKeyHashAddrID, hash: hash}
}

// DecodeAddress parses a base58check P2PKH address and checks that it
// belongs to the given network.
func DecodeAddress(s string, params *network.Params) (*Address, error) {
	body, err := DecodeBase58Check(s)
	if err != nil {
		return nil, err
	}
	if len(body) != 1+types.Hash160Size {
		return nil, fmt.Errorf("%w: address payload is %d bytes", ErrInvalidLength, len(body)-1)
	}
	if body[0] != params.PubKeyHashAddrID {
		return nil, fmt.Errorf("%w: %#02x is not a %s P2PKH version", ErrInvalidVersion, body[0], params.Name)
	}
	a := &Address{version: body[0]}
	copy(a.hash[:], body[1:])
	return a, nil
}

// String returns the base58check encoding.
func (a *Address) String() string {
	return EncodeBase58Check([]byte{a.version}, a.hash[:])
}

// Version returns the address version byte.
func (a *Address) Version() byte {
	return a.version
}

// Hash160 returns the public key hash.
func (a *Address) Hash160() types.Hash160 {
	return a.hash
}

// ScriptPubKey returns the locking script paying to this address.
func (a *Address) ScriptPubKey() types.Script {
	return types.P2PKHScript(a.hash)
}
