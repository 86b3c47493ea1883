package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-walletgen/internal/log"
	"github.com/Klingon-tech/klingnet-walletgen/internal/wallet"
	"github.com/Klingon-tech/klingnet-walletgen/pkg/network"
)

// Validate checks the config for operator mistakes and normalizes names.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	params, err := network.ByName(string(cfg.Network))
	if err != nil {
		return fmt.Errorf("network must be one of %s", strings.Join(network.Names(), ", "))
	}
	cfg.Network = NetworkType(params.Name)

	if !wallet.ValidStrength(cfg.Wallet.Strength) {
		return fmt.Errorf("wallet.strength: %w", wallet.ErrInvalidStrength)
	}
	if _, err := wallet.WordlistByName(cfg.Wallet.Language); err != nil {
		return fmt.Errorf("wallet.language must be one of %s", strings.Join(wallet.WordlistNames(), ", "))
	}

	if cfg.Wallet.Path != "" {
		if _, err := wallet.ParsePath(cfg.Wallet.Path); err != nil {
			return fmt.Errorf("wallet.path: %w", err)
		}
	} else {
		if cfg.Wallet.Change != wallet.ChangeExternal && cfg.Wallet.Change != wallet.ChangeInternal {
			return fmt.Errorf("wallet.change must be %d or %d", wallet.ChangeExternal, wallet.ChangeInternal)
		}
		if _, err := cfg.DerivationPath(); err != nil {
			return err
		}
	}

	if cfg.Output.Color == "" {
		cfg.Output.Color = ColorAuto
	}
	switch cfg.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color must be auto, always, or never")
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
