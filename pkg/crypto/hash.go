// Package crypto provides the hashing and secp256k1 primitives used by the
// wallet derivation pipeline.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // HASH160 is defined over RIPEMD-160.
)

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// DoubleHash computes Hash(Hash(data)).
func DoubleHash(data []byte) types.Hash {
	first := Hash(data)
	return Hash(first[:])
}

// Checksum returns the first 4 bytes of DoubleHash(data).
func Checksum(data []byte) [4]byte {
	h := DoubleHash(data)
	var c [4]byte
	copy(c[:], h[:4])
	return c
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) types.Hash160 {
	sha := Hash(data)
	r := ripemd160.New()
	r.Write(sha[:])
	var out types.Hash160
	copy(out[:], r.Sum(nil))
	return out
}

// HMACSHA512 computes HMAC-SHA512(key, data) and returns the left and
// right 32-byte halves.
func HMACSHA512(key, data []byte) (il, ir [32]byte) {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	sum := mac.Sum(nil)
	copy(il[:], sum[:32])
	copy(ir[:], sum[32:])
	return il, ir
}
