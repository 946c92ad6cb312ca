package kiwi

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// MessageKind is the only message kind the service accepts today.
const MessageKind = "amplify"

// Message is one endorsement: a submission when Title is non-empty, a
// vote when it is empty. The struct is the canonical form; its EIP-712
// encoding is the exact input to every signing backend.
type Message struct {
	Title     string
	Href      string
	Timestamp uint64
}

// NewMessage builds a message from user input, capturing the current
// wall-clock time. An empty href fails before any backend is contacted.
func NewMessage(title, href string) (*Message, error) {
	if href == "" {
		return nil, fmt.Errorf("href must not be empty: %w", ErrValidation)
	}

	return &Message{Title: title, Href: href, Timestamp: uint64(time.Now().Unix())}, nil
}

// The one supported domain separator. Changing any of these values
// invalidates every signature ever produced against the service.
var typedDataDomain = apitypes.TypedDataDomain{
	Name:    "kiwinews",
	Version: "1.0.0",
	Salt:    hexutil.Encode(crypto.Keccak256([]byte("kiwinews domain separator salt"))),
}

var typedDataTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "salt", Type: "bytes32"},
	},
	"Message": {
		{Name: "title", Type: "string"},
		{Name: "href", Type: "string"},
		{Name: "type", Type: "string"},
		{Name: "timestamp", Type: "uint256"},
	},
}

// TypedData returns the message in EIP-712 form.
func (m *Message) TypedData() apitypes.TypedData {
	return apitypes.TypedData{
		Types:       typedDataTypes,
		PrimaryType: "Message",
		Domain:      typedDataDomain,
		Message: apitypes.TypedDataMessage{
			"title":     m.Title,
			"href":      m.Href,
			"type":      MessageKind,
			"timestamp": math.NewHexOrDecimal256(int64(m.Timestamp)),
		},
	}
}

// SigningHash returns the 32-byte EIP-712 digest of the message along
// with the 66-byte 0x1901-prefixed preimage it was hashed from. The
// keystore backend signs the digest; the Ledger backend needs the
// preimage.
func (m *Message) SigningHash() (digest, preimage []byte, err error) {
	hash, raw, err := apitypes.TypedDataAndHash(m.TypedData())
	if err != nil {
		return nil, nil, err
	}

	return hash, []byte(raw), nil
}
