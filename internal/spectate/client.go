package spectate

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Client reads a spectator stream.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a hub, retrying with exponential backoff until maxWait
// has passed. logger may be nil.
func Dial(ctx context.Context, url string, maxWait time.Duration, logger *log.Logger) (*Client, error) {
	exp := &backoff.ExponentialBackOff{
		InitialInterval:     100 * time.Millisecond,
		RandomizationFactor: 0.2,
		Multiplier:          1.6,
		MaxInterval:         2 * time.Second,
	}

	conn, err := backoff.Retry(ctx, func() (*websocket.Conn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		return conn, err
	},
		backoff.WithBackOff(exp),
		backoff.WithMaxElapsedTime(maxWait),
		backoff.WithNotify(func(err error, d time.Duration) {
			if logger != nil {
				logger.Warn("spectator dial", "url", url, "error", err, "retrying", d)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("spectate: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Next blocks until the next frame arrives.
func (c *Client) Next() (Frame, error) {
	var f Frame
	if err := c.conn.ReadJSON(&f); err != nil {
		return Frame{}, fmt.Errorf("spectate: read: %w", err)
	}
	return f, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	//nolint:errcheck // best-effort close frame
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
