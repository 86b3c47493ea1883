// Package config handles wallet generator configuration.
//
// Settings are resolved in three layers: built-in defaults, an optional
// key = value config file, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/klingnet-walletgen/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// NetworkType identifies the network whose version bytes are used.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Regtest NetworkType = "regtest"
)

// Config holds the settings for one wallet generation run.
type Config struct {
	Network NetworkType `conf:"network"`

	// Key derivation
	Wallet WalletConfig

	// Result rendering
	Output OutputConfig

	// Logging
	Log LogConfig
}

// WalletConfig selects how the mnemonic is created and which key is derived.
type WalletConfig struct {
	// Path is an explicit derivation path. When empty, the BIP-44 path is
	// built from the network coin type and Account/Change/Index.
	Path    string `conf:"wallet.path"`
	Account uint32 `conf:"wallet.account"`
	Change  uint32 `conf:"wallet.change"`
	Index   uint32 `conf:"wallet.index"`

	Strength int    `conf:"wallet.strength"` // entropy bits
	Language string `conf:"wallet.language"` // BIP-39 wordlist

	// Passphrase prompts for a BIP-39 passphrase on the terminal.
	// The passphrase itself is never read from the file or flags.
	Passphrase bool `conf:"wallet.passphrase"`

	// Restore reads an existing mnemonic from stdin instead of generating
	// one (not persisted in config file).
	Restore bool
}

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	JSON  bool      `conf:"output.json"`
	Color ColorMode `conf:"output.color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Params returns the encoding constants for the configured network.
func (c *Config) Params() (*network.Params, error) {
	return network.ByName(string(c.Network))
}

// DerivationPath returns the explicit wallet path if one is set, otherwise
// m/44'/coin_type'/account'/change/index for the configured network.
func (c *Config) DerivationPath() (wallet.Path, error) {
	if c.Wallet.Path != "" {
		return wallet.ParsePath(c.Wallet.Path)
	}
	params, err := c.Params()
	if err != nil {
		return nil, err
	}
	for _, f := range []struct {
		key string
		v   uint32
	}{
		{"wallet.account", c.Wallet.Account},
		{"wallet.change", c.Wallet.Change},
		{"wallet.index", c.Wallet.Index},
	} {
		if f.v >= wallet.HardenedKeyStart {
			return nil, fmt.Errorf("%s: %w", f.key, wallet.ErrInvalidIndex)
		}
	}
	return wallet.BIP44Path(params.HDCoinType, c.Wallet.Account, c.Wallet.Change, c.Wallet.Index), nil
}

// Wordlist returns the configured BIP-39 wordlist.
func (c *Config) Wordlist() (*wallet.Wordlist, error) {
	return wallet.WordlistByName(c.Wallet.Language)
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet
//	macOS:   ~/Library/Application Support/Klingnet
//	Windows: %APPDATA%\Klingnet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Klingnet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Klingnet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Klingnet")
	default:
		return filepath.Join(home, ".klingnet")
	}
}

// DefaultConfigFile returns the config file read when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "walletgen.conf")
}
