package wallet

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// GenerateOptions configures one wallet generation. Zero values select the
// defaults: testnet, DefaultPath, 128-bit entropy, English, no passphrase
// and the OS entropy source.
type GenerateOptions struct {
	Params     *network.Params
	Path       Path
	Strength   int
	Passphrase string
	Wordlist   *Wordlist
	Entropy    EntropySource
}

func (o GenerateOptions) withDefaults() GenerateOptions {
	if o.Params == nil {
		o.Params = network.TestNet
	}
	if o.Path == nil {
		o.Path = MustParsePath(DefaultPath)
	}
	if o.Strength == 0 {
		o.Strength = DefaultEntropyBits
	}
	if o.Wordlist == nil {
		o.Wordlist = English
	}
	return o
}

// Result is the key material handed back to the caller. Nothing here is
// retained by the package.
type Result struct {
	Network       string `json:"network"`
	Path          string `json:"path"`
	Address       string `json:"address"`
	ScriptPubKey  string `json:"script_pubkey"`
	SegwitAddress string `json:"segwit_address"`
	PrivateKeyWIF string `json:"private_key_wif"`
	ExtendedPub   string `json:"extended_public_key"`
	Mnemonic      string `json:"mnemonic"`
}

// Generate creates a fresh mnemonic and derives the wallet at opts.Path.
// Either the full result is returned or an error; never a partial wallet.
func Generate(opts GenerateOptions) (*Result, error) {
	opts = opts.withDefaults()
	mnemonic, err := NewMnemonic(opts.Entropy, opts.Strength, opts.Wordlist)
	if err != nil {
		return nil, err
	}
	return fromMnemonic(mnemonic, opts)
}

// FromMnemonic derives the wallet at opts.Path from an existing mnemonic,
// which must pass checksum validation against opts.Wordlist. Runs of
// whitespace between words are collapsed to the wordlist separator.
func FromMnemonic(mnemonic string, opts GenerateOptions) (*Result, error) {
	opts = opts.withDefaults()
	mnemonic = strings.Join(strings.Fields(mnemonic), opts.Wordlist.Separator)
	return fromMnemonic(mnemonic, opts)
}

func fromMnemonic(mnemonic string, opts GenerateOptions) (*Result, error) {
	seed, err := SeedFromValidMnemonic(mnemonic, opts.Passphrase, opts.Wordlist)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(seed)

	master, err := NewMasterKey(seed, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	defer master.Zero()

	account, err := master.DerivePath(opts.Path)
	if err != nil {
		return nil, err
	}
	defer account.Zero()

	addr, err := account.Address()
	if err != nil {
		return nil, fmt.Errorf("encode address: %w", err)
	}
	segwit, err := account.SegwitAddress()
	if err != nil {
		return nil, fmt.Errorf("encode segwit address: %w", err)
	}
	wif, err := account.WIF()
	if err != nil {
		return nil, fmt.Errorf("encode private key: %w", err)
	}

	log.Wallet.Debug().
		Str("network", opts.Params.Name).
		Str("path", opts.Path.String()).
		Int("words", len(strings.Fields(mnemonic))).
		Str("address", addr.String()).
		Msg("Wallet derived")

	return &Result{
		Network:       opts.Params.Name,
		Path:          opts.Path.String(),
		Address:       addr.String(),
		ScriptPubKey:  addr.ScriptPubKey().String(),
		SegwitAddress: segwit,
		PrivateKeyWIF: wif,
		ExtendedPub:   account.Neuter().String(),
		Mnemonic:      mnemonic,
	}, nil
}
