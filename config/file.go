package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "network":
		cfg.Network = NetworkType(strings.ToLower(value))

	// Wallet
	case "wallet.path", "path":
		cfg.Wallet.Path = value
	case "wallet.account":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Account = n
	case "wallet.change":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Change = n
	case "wallet.index":
		n, err := parseUint32(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Index = n
	case "wallet.strength":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Wallet.Strength = n
	case "wallet.language":
		cfg.Wallet.Language = strings.ToLower(value)
	case "wallet.passphrase":
		cfg.Wallet.Passphrase = parseBool(value)

	// Output
	case "output.json", "json":
		cfg.Output.JSON = parseBool(value)
	case "output.color":
		cfg.Output.Color = ColorMode(strings.ToLower(value))

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// parseUint32 parses a decimal derivation index.
func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string, network NetworkType) error {
	content := `# Klingnet Wallet Generator Configuration
#
# Secrets (mnemonic, passphrase) are never read from this file.

# Network: mainnet, testnet or regtest
network = ` + string(network) + `

# ============================================================================
# Key Derivation
# ============================================================================

# Explicit derivation path. When unset, the BIP-44 path
# m/44'/coin_type'/account'/change/index is used.
# wallet.path = m/44'/1'/0'/0/0

wallet.account = 0
wallet.change = 0
wallet.index = 0

# Entropy strength in bits: 128, 160, 192, 224 or 256
wallet.strength = 128

# Mnemonic wordlist: english, japanese, spanish, french, italian, korean,
# czech, chinese-simplified, chinese-traditional
wallet.language = english

# Prompt for a BIP-39 passphrase
wallet.passphrase = false

# ============================================================================
# Output
# ============================================================================

output.json = false

# Styled output: auto, always or never
output.color = auto

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
