// Package natsclient wraps the NATS JetStream connection used to publish
// presence events to downstream consumers (dashboards, attendance export).
package natsclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/fredneedsausername/GateKeeper/internal/service"
)

const (
	// StreamPresenceEvents is the durable stream for gate crossing events.
	StreamPresenceEvents = "PRESENCE_EVENTS"
	// SubjectPresence is the wildcard subject hierarchy for presence messages.
	SubjectPresence = "presence.>"
)

// Client wraps a NATS connection and its JetStream context.
type Client struct {
	Conn *nats.Conn
	JS   nats.JetStreamContext
	Log  *zap.Logger
}

// NewClient connects to NATS and initialises a JetStream context.
func NewClient(url string, logger *zap.Logger) (*Client, error) {
	nc, err := nats.Connect(url, nats.RetryOnFailedConnect(true), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	logger.Info("NATS JetStream connected", zap.String("url", url))
	return &Client{Conn: nc, JS: js, Log: logger}, nil
}

// ProvisionStreams idempotently creates the required JetStream streams.
func (c *Client) ProvisionStreams() error {
	_, err := c.JS.StreamInfo(StreamPresenceEvents)
	if err == nil {
		c.Log.Info("NATS stream exists", zap.String("stream", StreamPresenceEvents))
		return nil
	}

	if err != nats.ErrStreamNotFound {
		return fmt.Errorf("failed to check stream info: %w", err)
	}

	cfg := &nats.StreamConfig{
		Name:      StreamPresenceEvents,
		Subjects:  []string{SubjectPresence},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
	}

	_, err = c.JS.AddStream(cfg)
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	c.Log.Info("NATS stream provisioned", zap.String("stream", StreamPresenceEvents))
	return nil
}

// PublishPresence pushes one committed crossing onto the stream. Subjects are
// presence.<kind>.<direction>, so consumers can filter cheaply.
func (c *Client) PublishPresence(ctx context.Context, evt service.PresenceEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal presence event: %w", err)
	}
	subject := fmt.Sprintf("presence.%s.%s", evt.Kind, evt.Direction)
	if _, err := c.JS.Publish(subject, payload, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains the connection so in-flight publish acks are not dropped,
// falling back to Close when Drain fails on an already-dead connection.
func (c *Client) Close() {
	if c.Conn != nil {
		if err := c.Conn.Drain(); err != nil {
			c.Conn.Close()
		}
	}
}
