package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// IntakeQueue is the queue group intake subscribers join, so each intake
// event is handled by one deckhand replica.
const IntakeQueue = "deckhand"

// Client carries deckhand events over NATS.
type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	nc, err := nats.Connect(url, connectOptions(token, logger)...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &Client{conn: nc, logger: logger}, nil
}

func connectOptions(token string, logger *slog.Logger) []nats.Option {
	opts := []nats.Option{
		nats.Name("deckhand"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}
	return opts
}

// PublishSelection announces a computed selection on SubjectSelectionCompleted.
func (c *Client) PublishSelection(evt SelectionEvent) error {
	return c.publish(SubjectSelectionCompleted, evt)
}

// PublishRegistered announces the service on SubjectRegistered.
func (c *Client) PublishRegistered(evt RegisteredEvent) error {
	return c.publish(SubjectRegistered, evt)
}

// OnCampaignIntake subscribes handler to SubjectCampaignIntake in the
// IntakeQueue group.
func (c *Client) OnCampaignIntake(handler func(subject string, data []byte)) error {
	_, err := c.conn.QueueSubscribe(SubjectCampaignIntake, IntakeQueue, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", SubjectCampaignIntake, err)
	}
	c.logger.Info("subscribed", "subject", SubjectCampaignIntake, "queue", IntakeQueue)
	return nil
}

func (c *Client) publish(subject string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", subject, err)
	}
	if err := c.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains subscriptions so in-flight intake events finish, then closes
// the connection.
func (c *Client) Close() {
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("nats drain failed", "error", err)
		c.conn.Close()
	}
}
