package kiwi

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

// DefaultEndpoint is the production submission endpoint.
const DefaultEndpoint = "https://news.kiwistand.com/api/v1/messages"

const (
	configDirName    = ".kiwistand"
	configFileName   = "config.toml"
	keystoreFileName = "key"
)

// Config holds the user-level settings, persisted between runs as TOML.
// Exactly one of LedgerAddressIndex and PathToKeystore is active at a
// time, selected by UseLedger.
type Config struct {
	Endpoint           string `toml:"endpoint"`
	UseLedger          bool   `toml:"use_ledger"`
	LedgerAddressIndex uint32 `toml:"ledger_address_index"`
	PathToKeystore     string `toml:"path_to_keystore"`
}

// DefaultConfig returns the documented defaults: the production
// endpoint, the Ledger backend, account index 0, and a keystore path
// inside the per-user data directory.
func DefaultConfig() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		Endpoint:           DefaultEndpoint,
		UseLedger:          true,
		LedgerAddressIndex: 0,
		PathToKeystore:     filepath.Join(dir, keystoreFileName),
	}, nil
}

// ConfigPath returns the location of the configuration file inside the
// per-user data directory.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFileName), nil
}

func configDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configDirName), nil
}

// LoadConfig reads the configuration at path, creating and persisting
// defaults when no file exists yet. An existing file that cannot be read
// or parsed is ErrConfigCorrupt, never replaced with defaults.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg, err := DefaultConfig()
		if err != nil {
			return nil, err
		}

		if err := cfg.Save(path); err != nil {
			return nil, err
		}

		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config %s (%v): %w", path, err, ErrConfigCorrupt)
	}

	var cfg Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s (%v): %w", path, err, ErrConfigCorrupt)
	}

	return &cfg, nil
}

// Save overwrites the configuration file at path, creating the parent
// directory as needed. Whole-file replace, last writer wins.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ResetConfig overwrites the configuration at path with the defaults and
// returns them.
func ResetConfig(path string) (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Signer selects the credential backend the configuration names. The
// password is only meaningful for the keystore backend.
func (c *Config) Signer(password string) Signer {
	if c.UseLedger {
		return &LedgerSigner{AccountIndex: c.LedgerAddressIndex}
	}

	return &KeystoreSigner{Path: c.PathToKeystore, Password: password}
}
