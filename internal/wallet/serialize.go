package wallet

import (
	"encoding/binary"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/address"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// serializedKeyLen is version(4) depth(1) fingerprint(4) child(4)
// chaincode(32) keydata(33).
const serializedKeyLen = 78

// String returns the BIP-32 base58check serialization (xprv/xpub on
// mainnet, tprv/tpub on testnet).
func (k *ExtendedKey) String() string {
	buf := make([]byte, 0, serializedKeyLen)
	if k.IsPrivate() {
		buf = append(buf, k.params.HDPrivateKeyID[:]...)
	} else {
		buf = append(buf, k.params.HDPublicKeyID[:]...)
	}
	buf = append(buf, k.depth)
	buf = append(buf, k.parentFP[:]...)
	buf = binary.BigEndian.AppendUint32(buf, k.childIndex)
	buf = append(buf, k.chainCode...)
	if k.IsPrivate() {
		buf = append(buf, 0x00)
		buf = append(buf, k.privKey...)
	} else {
		buf = append(buf, k.pubKey...)
	}
	s := address.EncodeBase58Check(buf[:4], buf[4:])
	zeroBytes(buf)
	return s
}

// ParseExtendedKey decodes a serialized extended key that must carry one
// of params' HD version prefixes. A nil params selects testnet.
func ParseExtendedKey(s string, params *network.Params) (*ExtendedKey, error) {
	if params == nil {
		params = network.TestNet
	}
	body, err := address.DecodeBase58Check(s)
	if err != nil {
		return nil, fmt.Errorf("decode extended key: %w", err)
	}
	defer zeroBytes(body)
	if len(body) != serializedKeyLen {
		return nil, fmt.Errorf("%w: extended key is %d bytes, want %d", ErrInvalidLength, len(body), serializedKeyLen)
	}

	var version [4]byte
	copy(version[:], body[:4])
	var private bool
	switch version {
	case params.HDPrivateKeyID:
		private = true
	case params.HDPublicKeyID:
	default:
		return nil, fmt.Errorf("%w: %x is not a %s extended key version", ErrInvalidVersion, version, params.Name)
	}

	k := &ExtendedKey{
		params:     params,
		depth:      body[4],
		childIndex: binary.BigEndian.Uint32(body[9:13]),
		chainCode:  append([]byte(nil), body[13:45]...),
	}
	copy(k.parentFP[:], body[5:9])
	if k.depth == 0 && (k.parentFP != [4]byte{} || k.childIndex != 0) {
		return nil, fmt.Errorf("%w: master key with non-zero parent fingerprint or index", ErrInvalidKeyData)
	}

	keyData := body[45:]
	if private {
		if keyData[0] != 0x00 {
			return nil, fmt.Errorf("%w: private key data must start with 0x00", ErrInvalidKeyData)
		}
		key, err := crypto.PrivateKeyFromBytes(keyData[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeyData, err)
		}
		k.privKey = key.Serialize()
		k.pubKey = key.PublicKey()
		key.Zero()
		return k, nil
	}

	if keyData[0] != 0x02 && keyData[0] != 0x03 {
		return nil, fmt.Errorf("%w: public key data must be compressed", ErrInvalidKeyData)
	}
	pub, err := crypto.CompressPublicKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyData, err)
	}
	k.pubKey = pub
	return k, nil
}
