package address

import (
	"bytes"
	"fmt"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/mr-tron/base58"
)

// EncodeBase58Check encodes version‖payload‖checksum, where checksum is the
// first 4 bytes of double SHA-256 over version‖payload.
func EncodeBase58Check(version []byte, payload []byte) string {
	buf := make([]byte, 0, len(version)+len(payload)+4)
	buf = append(buf, version...)
	buf = append(buf, payload...)
	sum := crypto.Checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// DecodeBase58Check decodes s and verifies its trailing checksum. The
// returned slice holds version‖payload; splitting it is up to the caller
// since version widths differ between formats.
func DecodeBase58Check(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(raw) < 5 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrInvalidLength, len(raw))
	}
	body, sum := raw[:len(raw)-4], raw[len(raw)-4:]
	want := crypto.Checksum(body)
	if !bytes.Equal(sum, want[:]) {
		return nil, ErrChecksumMismatch
	}
	return body, nil
}
