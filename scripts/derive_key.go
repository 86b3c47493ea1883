// derive_key.go prints the pubkey and addresses for a WIF or hex-encoded
// private key file.
// Usage: go run scripts/derive_key.go <keyfile> [network]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-walletgen/pkg/address"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/crypto"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <keyfile> [mainnet|testnet|regtest]")
		os.Exit(1)
	}
	params := network.TestNet
	if len(os.Args) > 2 {
		p, err := network.ByName(os.Args[2])
		if err != nil {
			fail(err)
		}
		params = p
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fail(err)
	}
	keyText := strings.TrimSpace(string(data))

	var keyBytes []byte
	compressed := true
	if wif, err := address.DecodeWIF(keyText, params); err == nil {
		keyBytes = wif.PrivKey
		compressed = wif.Compressed
	} else if keyBytes, err = hex.DecodeString(keyText); err != nil {
		fail(fmt.Errorf("key is neither %s WIF nor hex", params.Name))
	}

	key, err := crypto.PrivateKeyFromBytes(keyBytes)
	if err != nil {
		fail(err)
	}
	defer key.Zero()

	pub := key.PublicKey()
	if !compressed {
		pub = key.UncompressedPublicKey()
	}
	addr, err := address.NewP2PKHAddress(pub, params)
	if err != nil {
		fail(err)
	}
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("address=%s\n", addr.String())
	if compressed {
		segwit, err := address.NewP2WPKHAddress(pub, params)
		if err != nil {
			fail(err)
		}
		fmt.Printf("segwit=%s\n", segwit)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
