package wallet

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/address"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// Seed length bounds for master key generation (BIP-32).
const (
	MinSeedBytes = 16
	MaxSeedBytes = 64
)

// maxDepth is the deepest level a serialized key can record.
const maxDepth = 255

// masterHMACKey is the HMAC key used to derive the master node.
var masterHMACKey = []byte("Bitcoin seed")

// childHMAC computes the child derivation HMAC. Tests replace it to force
// the invalid-key branch; those tests must not run in parallel.
var childHMAC = crypto.HMACSHA512

// ExtendedKey is a BIP-32 hierarchical deterministic key. Values are
// immutable; derivation always returns a new key.
type ExtendedKey struct {
	params     *network.Params
	privKey    []byte // 32 bytes, nil for public-only keys
	pubKey     []byte // 33-byte compressed
	chainCode  []byte
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
}

// NewMasterKey creates the root key for seed on the given network. A nil
// params selects testnet.
func NewMasterKey(seed []byte, params *network.Params) (*ExtendedKey, error) {
	if params == nil {
		params = network.TestNet
	}
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeedLength, len(seed))
	}
	il, ir := crypto.HMACSHA512(masterHMACKey, seed)
	defer zeroBytes(il[:])

	key, err := crypto.PrivateKeyFromBytes(il[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMasterKey, err)
	}
	defer key.Zero()

	return &ExtendedKey{
		params:    params,
		privKey:   key.Serialize(),
		pubKey:    key.PublicKey(),
		chainCode: ir[:],
	}, nil
}

// Child derives the child at index. index must be below 2^31; hardened
// selects the hardened branch. If the index yields an invalid key the next
// index is tried once.
func (k *ExtendedKey) Child(index uint32, hardened bool) (*ExtendedKey, error) {
	if index >= HardenedKeyStart {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIndex, index)
	}
	if hardened && !k.IsPrivate() {
		return nil, ErrPrivateKeyRequired
	}
	if k.depth == maxDepth {
		return nil, ErrDepthOverflow
	}

	child, err := k.derive(index, hardened)
	if errors.Is(err, ErrInvalidChildKey) && index+1 < HardenedKeyStart {
		log.Wallet.Warn().
			Uint32("index", index).
			Bool("hardened", hardened).
			Msg("Child index produced an invalid key, using next index")
		child, err = k.derive(index+1, hardened)
	}
	return child, err
}

// DeriveChild derives a child from a raw BIP-32 child number.
// For hardened derivation, add HardenedKeyStart to the index.
func (k *ExtendedKey) DeriveChild(childNumber uint32) (*ExtendedKey, error) {
	return k.Child(childNumber&^HardenedKeyStart, childNumber >= HardenedKeyStart)
}

func (k *ExtendedKey) derive(index uint32, hardened bool) (*ExtendedKey, error) {
	childNumber := index
	data := make([]byte, 0, 37)
	if hardened {
		childNumber |= HardenedKeyStart
		data = append(data, 0x00)
		data = append(data, k.privKey...)
	} else {
		data = append(data, k.pubKey...)
	}
	data = binary.BigEndian.AppendUint32(data, childNumber)

	il, ir := childHMAC(k.chainCode, data)
	zeroBytes(data)
	defer zeroBytes(il[:])

	child := &ExtendedKey{
		params:     k.params,
		chainCode:  ir[:],
		depth:      k.depth + 1,
		parentFP:   k.Fingerprint(),
		childIndex: childNumber,
	}

	if k.IsPrivate() {
		priv, err := crypto.TweakAddPrivateKey(il, k.privKey)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %v", ErrInvalidChildKey, index, err)
		}
		key, err := crypto.PrivateKeyFromBytes(priv[:])
		zeroBytes(priv[:])
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %v", ErrInvalidChildKey, index, err)
		}
		child.privKey = key.Serialize()
		child.pubKey = key.PublicKey()
		key.Zero()
		return child, nil
	}

	pub, err := crypto.TweakAddPublicKey(il, k.pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: index %d: %v", ErrInvalidChildKey, index, err)
	}
	child.pubKey = pub
	return child, nil
}

// DerivePath derives a key along path. The first failing segment is
// reported as a *PathError. An empty path returns a copy of k.
func (k *ExtendedKey) DerivePath(path Path) (*ExtendedKey, error) {
	if len(path) == 0 {
		return k.clone(), nil
	}
	current := k
	for i, step := range path {
		child, err := current.Child(step.Index, step.Hardened)
		if err != nil {
			return nil, &PathError{Position: i, Step: step, Err: err}
		}
		current = child
	}
	return current, nil
}

// DerivePathString parses and derives a path such as "m/44'/1'/0'/0/0".
func (k *ExtendedKey) DerivePathString(s string) (*ExtendedKey, error) {
	path, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return k.DerivePath(path)
}

// DeriveAddress derives the key at m/44'/coin_type'/account'/change/index,
// taking the coin type from the key's network.
func (k *ExtendedKey) DeriveAddress(account, change, index uint32) (*ExtendedKey, error) {
	return k.DerivePath(BIP44Path(k.params.HDCoinType, account, change, index))
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *ExtendedKey) Neuter() *ExtendedKey {
	n := k.clone()
	zeroBytes(n.privKey)
	n.privKey = nil
	return n
}

// clone returns a deep copy sharing no buffers with k.
func (k *ExtendedKey) clone() *ExtendedKey {
	c := &ExtendedKey{
		params:     k.params,
		pubKey:     append([]byte(nil), k.pubKey...),
		chainCode:  append([]byte(nil), k.chainCode...),
		depth:      k.depth,
		parentFP:   k.parentFP,
		childIndex: k.childIndex,
	}
	if k.privKey != nil {
		c.privKey = append([]byte(nil), k.privKey...)
	}
	return c
}

// PrivateKeyBytes returns a copy of the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	if k.privKey == nil {
		return nil
	}
	return append([]byte(nil), k.privKey...)
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	return append([]byte(nil), k.pubKey...)
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return append([]byte(nil), k.chainCode...)
}

// IsPrivate returns true if this key contains a private key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.privKey != nil
}

// Depth returns the derivation depth (0 for master).
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ChildIndex returns the serialized child number, hardened bit included.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

// ParentFingerprint returns the first 4 bytes of the parent's key hash.
func (k *ExtendedKey) ParentFingerprint() [4]byte {
	return k.parentFP
}

// Fingerprint returns the first 4 bytes of HASH160 of this key's public key.
func (k *ExtendedKey) Fingerprint() [4]byte {
	h := crypto.Hash160(k.pubKey)
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// Params returns the network the key is bound to.
func (k *ExtendedKey) Params() *network.Params {
	return k.params
}

// Address returns the P2PKH address of this key's public key.
func (k *ExtendedKey) Address() (*address.Address, error) {
	return address.NewP2PKHAddress(k.pubKey, k.params)
}

// SegwitAddress returns the bech32 P2WPKH address of this key's public key.
func (k *ExtendedKey) SegwitAddress() (string, error) {
	return address.NewP2WPKHAddress(k.pubKey, k.params)
}

// WIF exports the private key in Wallet Import Format (compressed).
func (k *ExtendedKey) WIF() (string, error) {
	if !k.IsPrivate() {
		return "", ErrPrivateKeyRequired
	}
	return address.EncodeWIF(k.privKey, k.params, true)
}

// Zero wipes the private key and chain code. The key is unusable afterwards.
func (k *ExtendedKey) Zero() {
	zeroBytes(k.privKey)
	zeroBytes(k.chainCode)
	k.privKey = nil
}
