package kiwi

import (
	"crypto/ecdsa"
	"encoding"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureSize is the length of a recoverable r||s||v signature.
const SignatureSize = 65

// Signer produces a recoverable signature over a message's canonical
// encoding. The two implementations differ only in where the private key
// lives; their signatures recover the same address for the same key.
type Signer interface {
	Sign(m *Message) (*Signature, error)
}

// Signature is a recoverable secp256k1 signature over a message's
// EIP-712 digest, with v normalized to 27 or 28.
type Signature struct {
	b []byte
}

func newSignature(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, fmt.Errorf("signature is %d bytes, want %d: %w", len(b), SignatureSize, ErrCredential)
	}

	sig := make([]byte, SignatureSize)
	copy(sig, b)

	// crypto.Sign returns v as 0 or 1; the service expects the legacy
	// 27/28 form.
	if sig[64] < 27 {
		sig[64] += 27
	}

	return &Signature{b: sig}, nil
}

// Bytes returns the raw 65-byte signature.
func (s *Signature) Bytes() []byte {
	return s.b
}

// MarshalText encodes the signature as 0x-prefixed hex.
func (s *Signature) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// String returns the signature as 0x-prefixed hex.
func (s *Signature) String() string {
	return hexutil.Encode(s.b)
}

var (
	_ encoding.TextMarshaler = &Signature{}
	_ fmt.Stringer           = &Signature{}
)

// RecoverAddress returns the address of the key that produced sig over
// m. Any post-signing change to m yields a different address.
func RecoverAddress(m *Message, sig *Signature) (common.Address, error) {
	digest, _, err := m.SigningHash()
	if err != nil {
		return common.Address{}, err
	}

	raw := make([]byte, SignatureSize)
	copy(raw, sig.b)
	raw[64] -= 27

	pub, err := crypto.SigToPub(digest, raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature: %w", err)
	}

	return crypto.PubkeyToAddress(*pub), nil
}

// KeystoreSigner signs with a password-encrypted Web3 keystore file. The
// decrypted key lives only for the duration of one Sign call.
type KeystoreSigner struct {
	Path     string
	Password string
}

// Sign decrypts the keystore and signs the message's EIP-712 digest.
// A missing password, a missing file, and a failed decryption are
// reported separately; none is retried.
func (s *KeystoreSigner) Sign(m *Message) (*Signature, error) {
	if s.Password == "" {
		return nil, fmt.Errorf("keystore password not provided: %w", ErrCredential)
	}

	blob, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("keystore file %s unreadable (%v): %w", s.Path, err, ErrCredential)
	}

	key, err := keystore.DecryptKey(blob, s.Password)
	if err != nil {
		return nil, fmt.Errorf("keystore decryption failed, wrong password or corrupt file: %w", ErrCredential)
	}

	defer zeroKey(key.PrivateKey)

	digest, _, err := m.SigningHash()
	if err != nil {
		return nil, err
	}

	raw, err := crypto.Sign(digest, key.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("signing failed (%v): %w", err, ErrCredential)
	}

	return newSignature(raw)
}

var _ Signer = &KeystoreSigner{}

// zeroKey wipes decrypted key material once the signature exists.
func zeroKey(k *ecdsa.PrivateKey) {
	b := k.D.Bits()
	for i := range b {
		b[i] = 0
	}
}
