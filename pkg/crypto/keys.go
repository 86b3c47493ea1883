package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key sizes on secp256k1.
const (
	PrivateKeySize          = 32
	CompressedPublicKeySize = 33
)

var (
	ErrScalarOverflow   = errors.New("scalar is not below the curve order")
	ErrZeroScalar       = errors.New("scalar is zero")
	ErrPointAtInfinity  = errors.New("point at infinity")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// PrivateKey wraps a secp256k1 private key scalar.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
// The secret must be non-zero and below the curve order.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, ErrScalarOverflow
	}
	if s.IsZero() {
		return nil, ErrZeroScalar
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// IsValidPrivateKey reports whether b is a usable secp256k1 secret:
// 32 bytes, non-zero, below the curve order.
func IsValidPrivateKey(b []byte) bool {
	if len(b) != PrivateKeySize {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	return !overflow && !s.IsZero()
}

// CompressPublicKey parses a compressed or uncompressed public key and
// returns its 33-byte compressed form.
func CompressPublicKey(pub []byte) ([]byte, error) {
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return key.SerializeCompressed(), nil
}

// TweakAddPrivateKey returns (tweak + priv) mod n.
// Fails with ErrScalarOverflow if tweak >= n and ErrZeroScalar if the sum is zero.
func TweakAddPrivateKey(tweak [32]byte, priv []byte) ([32]byte, error) {
	var t, k secp256k1.ModNScalar
	if overflow := t.SetBytes(&tweak); overflow != 0 {
		return [32]byte{}, ErrScalarOverflow
	}
	if overflow := k.SetByteSlice(priv); overflow {
		return [32]byte{}, ErrScalarOverflow
	}
	k.Add(&t)
	if k.IsZero() {
		return [32]byte{}, ErrZeroScalar
	}
	out := k.Bytes()
	t.Zero()
	k.Zero()
	return out, nil
}

// TweakAddPublicKey returns the compressed encoding of tweak·G + pub.
// Fails with ErrScalarOverflow if tweak >= n and ErrPointAtInfinity if the
// sum is the identity.
func TweakAddPublicKey(tweak [32]byte, pub []byte) ([]byte, error) {
	var t secp256k1.ModNScalar
	if overflow := t.SetBytes(&tweak); overflow != 0 {
		return nil, ErrScalarOverflow
	}
	parent, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	var tG, p, sum secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&t, &tG)
	parent.AsJacobian(&p)
	secp256k1.AddNonConst(&tG, &p, &sum)
	if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
		return nil, ErrPointAtInfinity
	}
	sum.ToAffine()
	return secp256k1.NewPublicKey(&sum.X, &sum.Y).SerializeCompressed(), nil
}

// UncompressedPublicKey returns the 65-byte uncompressed public key.
func (pk *PrivateKey) UncompressedPublicKey() []byte {
	return pk.key.PubKey().SerializeUncompressed()
}
