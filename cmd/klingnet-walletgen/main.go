// klingnet-walletgen creates a BIP-39 mnemonic and derives a BIP-44 address
// and WIF private key from it.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Klingon-tech/klingnet-walletgen/config"
	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
	"github.com/Klingon-tech/klingnet-walletgen/internal/wallet"
)

const version = "0.1.0"

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if err != nil {
		fatal("%v", err)
	}

	switch {
	case flags.Help:
		config.PrintUsage(os.Stdout)
		return
	case flags.Version:
		fmt.Printf("klingnet-walletgen version %s\n", version)
		return
	case flags.WriteConfig != "":
		network := config.Testnet
		if flags.Network != "" {
			network = config.NetworkType(strings.ToLower(flags.Network))
		}
		if err := config.WriteDefaultConfig(flags.WriteConfig, network); err != nil {
			fatal("write config: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", flags.WriteConfig)
		return
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}
	log.CLI.Debug().
		Str("network", string(cfg.Network)).
		Int("strength", cfg.Wallet.Strength).
		Str("language", cfg.Wallet.Language).
		Bool("restore", cfg.Wallet.Restore).
		Msg("Config loaded")

	opts, err := generateOptions(cfg)
	if err != nil {
		fatal("%v", err)
	}

	var mnemonic string
	if cfg.Wallet.Restore {
		mnemonic, err = readMnemonic(os.Stdin)
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
	}

	if cfg.Wallet.Passphrase {
		pass, err := promptPassphrase(!cfg.Wallet.Restore)
		if err != nil {
			fatal("%v", err)
		}
		opts.Passphrase = pass
	}

	var res *wallet.Result
	if cfg.Wallet.Restore {
		res, err = wallet.FromMnemonic(mnemonic, opts)
	} else {
		res, err = wallet.Generate(opts)
	}
	if err != nil {
		fatal("%v", err)
	}

	if cfg.Output.JSON {
		if err := printJSON(os.Stdout, res); err != nil {
			fatal("write output: %v", err)
		}
		return
	}
	printWallet(os.Stdout, res, useStyle(cfg.Output.Color))
}

// generateOptions resolves the network, path and wordlist from cfg.
func generateOptions(cfg *config.Config) (wallet.GenerateOptions, error) {
	params, err := cfg.Params()
	if err != nil {
		return wallet.GenerateOptions{}, err
	}
	path, err := cfg.DerivationPath()
	if err != nil {
		return wallet.GenerateOptions{}, err
	}
	wl, err := cfg.Wordlist()
	if err != nil {
		return wallet.GenerateOptions{}, err
	}
	return wallet.GenerateOptions{
		Params:   params,
		Path:     path,
		Strength: cfg.Wallet.Strength,
		Wordlist: wl,
	}, nil
}

// readMnemonic reads the mnemonic to restore. On a terminal the input is
// hidden; otherwise everything on r is read.
func readMnemonic(r *os.File) (string, error) {
	if term.IsTerminal(int(r.Fd())) { //nolint: gosec
		b, err := readPassword("Mnemonic: ")
		if err != nil {
			return "", err
		}
		defer zero(b)
		return string(bytes.TrimSpace(b)), nil
	}
	return readMnemonicFrom(r)
}

func readMnemonicFrom(r io.Reader) (string, error) {
	b, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	defer zero(b)
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("no mnemonic on stdin")
	}
	return s, nil
}

// promptPassphrase asks for the BIP-39 passphrase, twice when confirm is set.
func promptPassphrase(confirm bool) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint: gosec
		return "", fmt.Errorf("passphrase prompt requires a terminal")
	}
	pass, err := readPassword("BIP-39 passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	defer zero(pass)
	if confirm {
		again, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return "", fmt.Errorf("read passphrase: %w", err)
		}
		defer zero(again)
		if !bytes.Equal(pass, again) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}
	return string(pass), nil
}

// ── Password helper ─────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint: gosec
	// Newline after hidden input.
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
