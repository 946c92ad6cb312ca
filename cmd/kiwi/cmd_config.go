package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/kiwinews/kiwi/pkg/kiwi"
)

type configCmd struct {
	Show     bool    `short:"s" help:"Show the current configuration."`
	Reset    bool    `short:"r" help:"Reset the configuration to defaults."`
	Ledger   *bool   `short:"l" help:"Use a Ledger device; false selects the keystore file."`
	Index    *uint32 `short:"i" help:"The Ledger account index."`
	Endpoint *string `short:"e" help:"The submission endpoint URL."`
	Keystore *string `short:"k" help:"The path to the keystore file."`
}

func (cmd *configCmd) Run(_ *kong.Context) error {
	path, err := kiwi.ConfigPath()
	if err != nil {
		return err
	}

	// Reset before the first read so a corrupt file can be recovered.
	if cmd.Reset {
		if _, err := kiwi.ResetConfig(path); err != nil {
			return err
		}

		fmt.Println("Configuration reset to default")
	}

	cfg, err := kiwi.LoadConfig(path)
	if err != nil {
		return err
	}

	if cmd.Show {
		fmt.Println("Current Configuration:")
		fmt.Printf("  Ledger: %v\n", cfg.UseLedger)
		fmt.Printf("  Ledger Index: %d\n", cfg.LedgerAddressIndex)
		fmt.Printf("  Endpoint: %s\n", cfg.Endpoint)
		fmt.Printf("  Keystore: %s\n", cfg.PathToKeystore)
	}

	if cmd.Ledger != nil {
		cfg.UseLedger = *cmd.Ledger
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Configuration updated -> Ledger: %v\n", cfg.UseLedger)
	}

	if cmd.Index != nil {
		cfg.LedgerAddressIndex = *cmd.Index
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Configuration updated -> Ledger Index: %d\n", cfg.LedgerAddressIndex)
	}

	if cmd.Endpoint != nil {
		cfg.Endpoint = *cmd.Endpoint
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Configuration updated -> Endpoint: %s\n", cfg.Endpoint)
	}

	if cmd.Keystore != nil {
		cfg.PathToKeystore = *cmd.Keystore
		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Printf("Configuration updated -> Keystore: %s\n", cfg.PathToKeystore)
	}

	return nil
}
