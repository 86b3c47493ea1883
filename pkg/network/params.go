// Package network defines the version bytes that tie encoded keys and
// addresses to a specific Bitcoin network.
package network

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Params holds the per-network encoding constants.
// Values are never mutated after construction.
type Params struct {
	Name string

	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP-32 extended key version bytes.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	Bech32HRP string

	// HDCoinType is the BIP-44 coin type (unhardened).
	HDCoinType uint32
}

func fromChaincfg(name string, p *chaincfg.Params) *Params {
	return &Params{
		Name:             name,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPrivateKeyID:   p.HDPrivateKeyID,
		HDPublicKeyID:    p.HDPublicKeyID,
		Bech32HRP:        p.Bech32HRPSegwit,
		HDCoinType:       p.HDCoinType,
	}
}

// Presets.
var (
	MainNet = fromChaincfg("mainnet", &chaincfg.MainNetParams)
	TestNet = fromChaincfg("testnet", &chaincfg.TestNet3Params)
	RegTest = fromChaincfg("regtest", &chaincfg.RegressionNetParams)
)

// ByName returns the preset with the given name.
// "main", "test" and "testnet3" are accepted as aliases.
func ByName(name string) (*Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main":
		return MainNet, nil
	case "testnet", "testnet3", "test":
		return TestNet, nil
	case "regtest":
		return RegTest, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

// Names lists the supported preset names.
func Names() []string {
	return []string{MainNet.Name, TestNet.Name, RegTest.Name}
}
