package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help        bool
	Version     bool
	WriteConfig string

	// Core
	Network string
	Testnet bool
	Regtest bool
	Config  string

	// Wallet
	Path       string
	Account    uint
	Change     uint
	Index      uint
	Strength   int
	Words      int
	Language   string
	Passphrase bool
	Restore    bool

	// Output
	JSON  bool
	Color string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags whose zero value is meaningful.
	SetAccount    bool
	SetChange     bool
	SetIndex      bool
	SetPassphrase bool
	SetJSON       bool
	SetLogJSON    bool
}

// ErrUnexpectedArgs is returned when positional arguments are left after
// flag parsing.
var ErrUnexpectedArgs = errors.New("unexpected arguments")

// ParseFlags parses command-line flags (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-walletgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write a default config file to the given path and exit")

	// Core
	fs.StringVar(&f.Network, "network", "", "Network (mainnet, testnet or regtest)")
	fs.BoolVar(&f.Testnet, "testnet", false, "Shorthand for --network=testnet")
	fs.BoolVar(&f.Regtest, "regtest", false, "Shorthand for --network=regtest")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Wallet
	fs.StringVar(&f.Path, "path", "", "Derivation path, e.g. m/44'/1'/0'/0/0")
	fs.UintVar(&f.Account, "account", 0, "BIP-44 account")
	fs.UintVar(&f.Change, "change", 0, "BIP-44 chain (0 external, 1 internal)")
	fs.UintVar(&f.Index, "index", 0, "BIP-44 address index")
	fs.IntVar(&f.Strength, "strength", 0, "Entropy strength in bits")
	fs.IntVar(&f.Words, "words", 0, "Mnemonic length in words (12, 15, 18, 21 or 24)")
	fs.StringVar(&f.Language, "language", "", "Mnemonic wordlist")
	fs.BoolVar(&f.Passphrase, "passphrase", false, "Prompt for a BIP-39 passphrase")
	fs.BoolVar(&f.Restore, "restore", false, "Read an existing mnemonic from stdin")

	// Output
	fs.BoolVar(&f.JSON, "json", false, "Print the wallet as JSON")
	fs.StringVar(&f.Color, "color", "", "Styled output: auto, always or never")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if f.Testnet {
		f.Network = string(Testnet)
	}
	if f.Regtest {
		f.Network = string(Regtest)
	}
	f.SetAccount = isFlagSet(fs, "account")
	f.SetChange = isFlagSet(fs, "change")
	f.SetIndex = isFlagSet(fs, "index")
	f.SetPassphrase = isFlagSet(fs, "passphrase")
	f.SetJSON = isFlagSet(fs, "json")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	f.Args = fs.Args()

	// Detect unparsed flags caused by positional arguments stopping the parser.
	for _, arg := range f.Args {
		if strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("flag %q was not parsed (positional argument stopped parsing)", arg)
		}
	}
	if len(f.Args) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(f.Args, " "))
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Core
	if f.Network != "" {
		cfg.Network = NetworkType(strings.ToLower(f.Network))
	}

	// Wallet
	if f.Path != "" {
		cfg.Wallet.Path = f.Path
	}
	if f.SetAccount {
		cfg.Wallet.Account = toIndex(f.Account)
	}
	if f.SetChange {
		cfg.Wallet.Change = toIndex(f.Change)
	}
	if f.SetIndex {
		cfg.Wallet.Index = toIndex(f.Index)
	}
	if f.Strength != 0 {
		cfg.Wallet.Strength = f.Strength
	}
	if f.Words != 0 {
		cfg.Wallet.Strength = wordsToStrength(f.Words)
	}
	if f.Language != "" {
		cfg.Wallet.Language = strings.ToLower(f.Language)
	}
	if f.SetPassphrase {
		cfg.Wallet.Passphrase = f.Passphrase
	}
	cfg.Wallet.Restore = f.Restore

	// Output
	if f.SetJSON {
		cfg.Output.JSON = f.JSON
	}
	if f.Color != "" {
		cfg.Output.Color = ColorMode(strings.ToLower(f.Color))
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// wordsToStrength maps a mnemonic word count to entropy bits. Counts that
// are not a multiple of three map to an invalid strength.
func wordsToStrength(words int) int {
	if words%3 != 0 {
		return 0
	}
	return words / 3 * 32
}

// toIndex narrows a flag value to a child index. Values that do not fit
// saturate so validation rejects them.
func toIndex(v uint) uint32 {
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	usage := `Klingnet Wallet Generator - BIP-39/BIP-32/BIP-44 key generation

Usage:
  klingnet-walletgen [options]
  klingnet-walletgen --restore < mnemonic.txt
  klingnet-walletgen --help

Commands:
  --help, -h        Show this help message
  --version, -v     Show version information
  --write-config    Write a default config file to the given path and exit

Core Options:
  --network         Network: mainnet, testnet (default) or regtest
  --testnet         Shorthand for --network=testnet
  --regtest         Shorthand for --network=regtest
  --config, -c      Config file path (default: <datadir>/walletgen.conf)

Wallet Options:
  --path            Derivation path (overrides account/change/index)
  --account         BIP-44 account (default: 0)
  --change          BIP-44 chain: 0 external, 1 internal (default: 0)
  --index           BIP-44 address index (default: 0)
  --strength        Entropy bits: 128, 160, 192, 224, 256 (default: 128)
  --words           Mnemonic length: 12, 15, 18, 21, 24 (overrides --strength)
  --language        Mnemonic wordlist (default: english)
  --passphrase      Prompt for a BIP-39 passphrase
  --restore         Read an existing mnemonic from stdin

Output Options:
  --json            Print the wallet as JSON
  --color           Styled output: auto (default), always, never

Logging Options:
  --log-level       Log level: debug, info, warn, error (default: warn)
  --log-file        Log file path (default: stderr only)
  --log-json        Output logs as JSON

Examples:
  # Fresh testnet wallet
  klingnet-walletgen

  # 24-word mainnet wallet, second receiving address
  klingnet-walletgen --network=mainnet --words=24 --index=1

  # Re-derive from an existing mnemonic
  echo "abandon ... about" | klingnet-walletgen --restore --json
`
	fmt.Fprint(w, usage)
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file (--config, or the default path if it exists)
// 3. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}
	if flags.Help || flags.Version || flags.WriteConfig != "" {
		return nil, flags, nil
	}

	// Determine network first (needed for defaults)
	network := Testnet
	if flags.Network != "" {
		network = NetworkType(strings.ToLower(flags.Network))
	}

	// Start with defaults
	cfg := Default(network)

	// Determine config file path
	configPath := flags.Config
	if configPath == "" {
		configPath = DefaultConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, nil, fmt.Errorf("config file: %w", err)
	}

	// Load config file
	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}

	// Apply file config
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Wallet.Path != "" && (cfg.Wallet.Account != 0 || cfg.Wallet.Change != 0 || cfg.Wallet.Index != 0) {
		log.Config.Warn().
			Str("path", cfg.Wallet.Path).
			Msg("wallet.path is set, ignoring account/change/index")
	}

	return cfg, flags, nil
}
