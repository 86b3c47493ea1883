package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
)

// ScriptType identifies a standard locking script template.
type ScriptType uint8

const (
	ScriptTypeP2PKH  ScriptType = 0x01 // Pay to public key hash
	ScriptTypeP2WPKH ScriptType = 0x02 // Pay to witness public key hash (v0)
)

// Script opcodes used by the supported templates.
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opEqualVerify = 0x88
	opCheckSig    = 0xac
	op0           = 0x00
	opData20      = 0x14
)

// ErrUnknownScript is returned when bytes match no supported template.
var ErrUnknownScript = errors.New("unsupported script template")

// String returns a human-readable name for the script type.
func (st ScriptType) String() string {
	switch st {
	case ScriptTypeP2PKH:
		return "P2PKH"
	case ScriptTypeP2WPKH:
		return "P2WPKH"
	default:
		return "Unknown"
	}
}

// Script is a locking script paying to a 20-byte key hash.
type Script struct {
	Type ScriptType
	Hash Hash160
}

// P2PKHScript returns OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func P2PKHScript(h Hash160) Script {
	return Script{Type: ScriptTypeP2PKH, Hash: h}
}

// P2WPKHScript returns OP_0 <hash>.
func P2WPKHScript(h Hash160) Script {
	return Script{Type: ScriptTypeP2WPKH, Hash: h}
}

// Bytes returns the serialized script, or nil for an unknown type.
func (s Script) Bytes() []byte {
	switch s.Type {
	case ScriptTypeP2PKH:
		b := make([]byte, 0, 25)
		b = append(b, opDup, opHash160, opData20)
		b = append(b, s.Hash[:]...)
		return append(b, opEqualVerify, opCheckSig)
	case ScriptTypeP2WPKH:
		b := make([]byte, 0, 22)
		b = append(b, op0, opData20)
		return append(b, s.Hash[:]...)
	default:
		return nil
	}
}

// String returns the hex-encoded script.
func (s Script) String() string {
	return hex.EncodeToString(s.Bytes())
}

// ParseScript recognizes a serialized P2PKH or P2WPKH script.
func ParseScript(b []byte) (Script, error) {
	var s Script
	switch {
	case len(b) == 25 && b[0] == opDup && b[1] == opHash160 && b[2] == opData20 &&
		b[23] == opEqualVerify && b[24] == opCheckSig:
		s.Type = ScriptTypeP2PKH
		copy(s.Hash[:], b[3:23])
	case len(b) == 22 && b[0] == op0 && b[1] == opData20:
		s.Type = ScriptTypeP2WPKH
		copy(s.Hash[:], b[2:])
	default:
		return Script{}, ErrUnknownScript
	}
	return s, nil
}

// scriptJSON is the JSON representation of a Script with hex-encoded data.
type scriptJSON struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// MarshalJSON encodes the script with hex-encoded data.
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(scriptJSON{
		Type: s.Type.String(),
		Data: s.String(),
	})
}

// UnmarshalJSON decodes a script from its hex-encoded data.
func (s *Script) UnmarshalJSON(data []byte) error {
	var j scriptJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	b, err := hex.DecodeString(j.Data)
	if err != nil {
		return err
	}
	parsed, err := ParseScript(b)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
