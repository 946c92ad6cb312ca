package kiwi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "endpoint", DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "use_ledger", true, cfg.UseLedger)
	assert.Equal(t, "ledger_address_index", uint32(0), cfg.LedgerAddressIndex)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults were not persisted: %v", err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	saved := &Config{
		Endpoint:           "http://localhost:8000/api/v1/messages",
		UseLedger:          false,
		LedgerAddressIndex: 7,
		PathToKeystore:     "/tmp/key",
	}

	if err := saved.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "config", saved, loaded)

	// Saving what was loaded must not change the file's meaning.
	if err := loaded.Save(path); err != nil {
		t.Fatal(err)
	}

	again, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "config after re-save", loaded, again)
}

func TestLoadConfigCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	if err := os.WriteFile(path, []byte("use_ledger = {{{"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigCorrupt) {
		t.Fatalf("expected ErrConfigCorrupt, got %v", err)
	}
}

func TestResetConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")

	custom := &Config{Endpoint: "http://localhost:8000", UseLedger: false}
	if err := custom.Save(path); err != nil {
		t.Fatal(err)
	}

	reset, err := ResetConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "reset endpoint", DefaultEndpoint, reset.Endpoint)

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "persisted reset", reset, loaded)
}

func TestConfigSignerSelection(t *testing.T) {
	t.Parallel()

	hw := &Config{UseLedger: true, LedgerAddressIndex: 3}
	if _, ok := hw.Signer("").(*LedgerSigner); !ok {
		t.Fatalf("expected a LedgerSigner, got %T", hw.Signer(""))
	}

	local := &Config{UseLedger: false, PathToKeystore: "/tmp/key"}

	ks, ok := local.Signer("hunter2").(*KeystoreSigner)
	if !ok {
		t.Fatalf("expected a KeystoreSigner, got %T", local.Signer("hunter2"))
	}

	assert.Equal(t, "keystore path", "/tmp/key", ks.Path)
	assert.Equal(t, "password", "hunter2", ks.Password)
}
