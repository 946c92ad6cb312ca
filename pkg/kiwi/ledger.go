package kiwi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
)

// LedgerSigner signs with a locally attached Ledger device. The device
// owns user confirmation: Sign blocks until the request is approved on
// screen, rejected, or the connection fails.
type LedgerSigner struct {
	AccountIndex uint32
}

// Sign asks the Ledger to sign the message's EIP-712 domain and message
// hashes for the configured account.
func (s *LedgerSigner) Sign(m *Message) (*Signature, error) {
	hub, err := usbwallet.NewLedgerHub()
	if err != nil {
		return nil, fmt.Errorf("ledger hub unavailable (%v): %w", err, ErrCredential)
	}

	wallets := hub.Wallets()
	if len(wallets) == 0 {
		return nil, fmt.Errorf("no ledger device found: %w", ErrCredential)
	}

	wallet := wallets[0]
	if err := wallet.Open(""); err != nil {
		return nil, fmt.Errorf("opening ledger (%v): %w", err, ErrCredential)
	}

	defer func() { _ = wallet.Close() }()

	account, err := wallet.Derive(s.derivationPath(), false)
	if err != nil {
		return nil, fmt.Errorf("deriving ledger account %d (%v): %w", s.AccountIndex, err, ErrCredential)
	}

	_, preimage, err := m.SigningHash()
	if err != nil {
		return nil, err
	}

	raw, err := wallet.SignData(account, accounts.MimetypeTypedData, preimage)
	if err != nil {
		return nil, fmt.Errorf("ledger refused the signing request (%v): %w", err, ErrCredential)
	}

	return newSignature(raw)
}

var _ Signer = &LedgerSigner{}

// derivationPath is the Ledger Live layout: m/44'/60'/index'/0/0.
func (s *LedgerSigner) derivationPath() accounts.DerivationPath {
	return accounts.DerivationPath{0x80000000 + 44, 0x80000000 + 60, 0x80000000 + s.AccountIndex, 0, 0}
}
