package config

import "github.com/Klingon-tech/klingnet-walletgen/internal/wallet"

// DefaultTestnet returns the default configuration for testnet.
func DefaultTestnet() *Config {
	return &Config{
		Network: Testnet,
		Wallet: WalletConfig{
			Account:  0,
			Change:   wallet.ChangeExternal,
			Index:    0,
			Strength: wallet.DefaultEntropyBits,
			Language: wallet.English.Name,
		},
		Output: OutputConfig{
			JSON:  false,
			Color: ColorAuto,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	cfg := DefaultTestnet()
	cfg.Network = Mainnet
	return cfg
}

// DefaultRegtest returns the default configuration for regtest.
func DefaultRegtest() *Config {
	cfg := DefaultTestnet()
	cfg.Network = Regtest
	return cfg
}

// Default returns the default configuration for the given network.
// Unknown networks fall back to testnet.
func Default(network NetworkType) *Config {
	switch network {
	case Mainnet:
		return DefaultMainnet()
	case Regtest:
		return DefaultRegtest()
	default:
		return DefaultTestnet()
	}
}
