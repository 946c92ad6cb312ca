// Package kiwi implements the Kiwi News submission client.
//
// A submission is an EIP-712 typed message over (title, href, "amplify",
// timestamp), signed with either a password-encrypted keystore file or a
// Ledger hardware wallet, and delivered as JSON to an aggregation
// endpoint. A vote is a submission with an empty title.
package kiwi

import "errors"

var (
	// ErrValidation is returned when a required argument is missing or
	// empty. No signing or network activity happens after it.
	ErrValidation = errors.New("invalid argument")

	// ErrConfigCorrupt is returned when an existing configuration file
	// cannot be read or parsed. It is never silently replaced with
	// defaults.
	ErrConfigCorrupt = errors.New("corrupt configuration")

	// ErrCredential is returned when a signing backend cannot produce a
	// signature: wrong password, missing or corrupt keystore file, or an
	// unreachable or refusing Ledger device.
	ErrCredential = errors.New("credential failure")

	// ErrNetwork is returned when a submission cannot be delivered.
	ErrNetwork = errors.New("network failure")
)
