package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Klingon-tech/klingnet-walletgen/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// isolateHome points the default config location at an empty temp dir.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
}

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walletgen.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	tests := []struct {
		network NetworkType
		want    NetworkType
	}{
		{Mainnet, Mainnet},
		{Testnet, Testnet},
		{Regtest, Regtest},
		{"", Testnet},
		{"bogus", Testnet},
	}

	for _, tt := range tests {
		cfg := Default(tt.network)
		if cfg.Network != tt.want {
			t.Errorf("Default(%q).Network = %q, want %q", tt.network, cfg.Network, tt.want)
		}
		if err := Validate(cfg); err != nil {
			t.Errorf("Default(%q) should validate: %v", tt.network, err)
		}
	}

	cfg := DefaultTestnet()
	if cfg.Wallet.Strength != 128 {
		t.Errorf("Strength = %d, want 128", cfg.Wallet.Strength)
	}
	if cfg.Wallet.Language != "english" {
		t.Errorf("Language = %q, want english", cfg.Wallet.Language)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("Color = %q, want auto", cfg.Output.Color)
	}
}

func TestConfig_DerivationPath(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() *Config
		want string
	}{
		{"testnet default", DefaultTestnet, "m/44'/1'/0'/0/0"},
		{"mainnet default", DefaultMainnet, "m/44'/0'/0'/0/0"},
		{"regtest default", DefaultRegtest, "m/44'/1'/0'/0/0"},
		{"account change index", func() *Config {
			cfg := DefaultMainnet()
			cfg.Wallet.Account = 3
			cfg.Wallet.Change = 1
			cfg.Wallet.Index = 42
			return cfg
		}, "m/44'/0'/3'/1/42"},
		{"explicit path wins", func() *Config {
			cfg := DefaultMainnet()
			cfg.Wallet.Account = 3
			cfg.Wallet.Path = "m/84h/0h/0h/0/7"
			return cfg
		}, "m/84'/0'/0'/0/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tt.cfg().DerivationPath()
			if err != nil {
				t.Fatalf("DerivationPath() error: %v", err)
			}
			if path.String() != tt.want {
				t.Errorf("DerivationPath() = %s, want %s", path, tt.want)
			}
		})
	}
}

func TestConfig_DerivationPath_Errors(t *testing.T) {
	cfg := DefaultTestnet()
	cfg.Wallet.Index = wallet.HardenedKeyStart
	if _, err := cfg.DerivationPath(); !errors.Is(err, wallet.ErrInvalidIndex) {
		t.Errorf("error = %v, want ErrInvalidIndex", err)
	}

	cfg = DefaultTestnet()
	cfg.Wallet.Path = "44'/0'"
	if _, err := cfg.DerivationPath(); !errors.Is(err, wallet.ErrInvalidPath) {
		t.Errorf("error = %v, want ErrInvalidPath", err)
	}
}

func TestConfig_Params(t *testing.T) {
	for _, tt := range []struct {
		network NetworkType
		want    *network.Params
	}{
		{Mainnet, network.MainNet},
		{Testnet, network.TestNet},
		{Regtest, network.RegTest},
	} {
		cfg := Default(tt.network)
		params, err := cfg.Params()
		if err != nil {
			t.Fatalf("Params() error: %v", err)
		}
		if params != tt.want {
			t.Errorf("Params() = %s, want %s", params.Name, tt.want.Name)
		}
	}
}

func TestConfig_Wordlist(t *testing.T) {
	cfg := DefaultTestnet()
	cfg.Wallet.Language = "japanese"
	wl, err := cfg.Wordlist()
	if err != nil {
		t.Fatalf("Wordlist() error: %v", err)
	}
	if wl != wallet.Japanese {
		t.Errorf("Wordlist() = %s, want japanese", wl.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"network alias", func(c *Config) { c.Network = "testnet3" }, true},
		{"unknown network", func(c *Config) { c.Network = "klingnet" }, false},
		{"strength 256", func(c *Config) { c.Wallet.Strength = 256 }, true},
		{"strength 100", func(c *Config) { c.Wallet.Strength = 100 }, false},
		{"strength 0", func(c *Config) { c.Wallet.Strength = 0 }, false},
		{"language", func(c *Config) { c.Wallet.Language = "klingon" }, false},
		{"path", func(c *Config) { c.Wallet.Path = "m/x" }, false},
		{"path index too large", func(c *Config) { c.Wallet.Path = "m/2147483648" }, false},
		{"change 2", func(c *Config) { c.Wallet.Change = 2 }, false},
		{"change 2 ignored with path", func(c *Config) { c.Wallet.Change = 2; c.Wallet.Path = "m/0" }, true},
		{"account too large", func(c *Config) { c.Wallet.Account = wallet.HardenedKeyStart }, false},
		{"empty color", func(c *Config) { c.Output.Color = "" }, true},
		{"bad color", func(c *Config) { c.Output.Color = "rainbow" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTestnet()
			tt.modify(cfg)
			err := Validate(cfg)
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestValidate_Normalizes(t *testing.T) {
	cfg := DefaultTestnet()
	cfg.Network = "main"
	cfg.Output.Color = ""
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Network != Mainnet {
		t.Errorf("Network = %q, want mainnet", cfg.Network)
	}
	if cfg.Output.Color != ColorAuto {
		t.Errorf("Color = %q, want auto", cfg.Output.Color)
	}
}
