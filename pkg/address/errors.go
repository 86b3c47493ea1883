// Package address encodes public and private keys into the strings users
// copy around: base58check P2PKH addresses, bech32 P2WPKH addresses and WIF
// private keys.
package address

import "errors"

var (
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrInvalidFormat    = errors.New("invalid encoding")
	ErrInvalidKeyData   = errors.New("invalid key data")
)
