package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/nluentities/language"
	"github.com/c360studio/nluentities/ontology"
)

// Client issues parse requests against a running extraction service.
type Client struct {
	conn    *nats.Conn
	subject string
	timeout time.Duration
}

// NewClient connects to NATS and targets the given parse subject.
func NewClient(url, subject string, timeout time.Duration) (*Client, error) {
	conn, err := nats.Connect(url, nats.Name("nluentities-client"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &Client{conn: conn, subject: subject, timeout: timeout}, nil
}

// Parse requests extraction for text in the given language. A nil kinds
// slice requests every supported kind.
func (c *Client) Parse(ctx context.Context, text string, lang language.Language, kinds []ontology.BuiltinEntityKind) (*ParseResponse, error) {
	req := ParseRequest{
		Text:        text,
		Language:    lang.String(),
		EntityKinds: kinds,
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	msg, err := c.conn.RequestWithContext(reqCtx, c.subject, data)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", c.subject, err)
	}

	var resp ParseResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}

// Close releases the NATS connection.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
