package kiwi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Payload is the wire form of a signed message. Field order matches what
// the service expects.
type Payload struct {
	Title     string `json:"title"`
	Href      string `json:"href"`
	Type      string `json:"type"`
	Timestamp uint64 `json:"timestamp"`
	Signature string `json:"signature"`
}

// NewPayload combines a message and its signature into the wire form.
func NewPayload(m *Message, sig *Signature) *Payload {
	return &Payload{
		Title:     m.Title,
		Href:      m.Href,
		Type:      MessageKind,
		Timestamp: m.Timestamp,
		Signature: sig.String(),
	}
}

// Amplify validates and builds a message, signs it with the given
// backend, and returns the wire payload. Validation happens before the
// signer is touched; a vote is simply an empty title.
func Amplify(signer Signer, title, href string) (*Payload, error) {
	m, err := NewMessage(title, href)
	if err != nil {
		return nil, err
	}

	sig, err := signer.Sign(m)
	if err != nil {
		return nil, err
	}

	return NewPayload(m, sig), nil
}

// Client delivers payloads to the aggregation service. The zero value
// uses http.DefaultClient.
type Client struct {
	HTTP *http.Client
}

// Submit POSTs the payload to endpoint and returns the raw response
// body. Any HTTP response counts as delivery; interpreting the status is
// left to the operator reading the body. Transport failures are
// ErrNetwork and terminal: no retry, no backoff.
func (c *Client) Submit(endpoint string, p *Payload) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("submitting to %s (%v): %w", endpoint, err, ErrNetwork)
	}

	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s (%v): %w", endpoint, err, ErrNetwork)
	}

	return string(b), nil
}
