// Package livestatus polls a remote live-status endpoint and caches the last
// successful payload. The remote feed serves exactly the shapes the local
// deriver produces, so the engine can swap it in wholesale.
package livestatus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SOJH07/NAVA-Dashboard/liveops"
)

// Client polls the configured URL on a fixed interval. On failure the last
// good payload is retained and the error is recorded; the next interval
// retries. There is no backoff: the feed is optional and the local derivation
// covers any outage.
type Client struct {
	client http.Client
	url    string

	lock       sync.RWMutex // guards the cached payload and error below
	last       liveops.RemotePayload
	receivedAt time.Time
	lastErr    error

	logger *slog.Logger
}

func New(client http.Client, url string) *Client {
	return &Client{
		client: client,
		url:    url,
		logger: slog.Default().With("url", url),
	}
}

// Run polls immediately and then on every interval until the context is
// cancelled.
func (c *Client) Run(ctx context.Context, period time.Duration) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	c.poll()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.poll()
		}
	}
}

// Latest returns the last successfully fetched payload and when it arrived.
// ok is false until the first successful poll.
func (c *Client) Latest() (liveops.RemotePayload, time.Time, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.last, c.receivedAt, !c.receivedAt.IsZero()
}

// Err returns the error from the most recent poll, or nil if it succeeded.
func (c *Client) Err() error {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.lastErr
}

func (c *Client) poll() {
	payload, err := c.fetch()

	c.lock.Lock()
	defer c.lock.Unlock()

	if err != nil {
		c.lastErr = err
		c.logger.Error("Failed to fetch live status", "error", err)
		return
	}

	c.last = payload
	c.receivedAt = time.Now()
	c.lastErr = nil
	c.logger.Debug("Fetched live status",
		"live_classes", len(payload.LiveClasses),
		"live_students", len(payload.LiveStudents),
	)
}

func (c *Client) fetch() (liveops.RemotePayload, error) {
	response, err := c.client.Get(c.url)
	if err != nil {
		return liveops.RemotePayload{}, fmt.Errorf("get live status: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return liveops.RemotePayload{}, fmt.Errorf("get live status: unexpected status %d", response.StatusCode)
	}

	var payload liveops.RemotePayload
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return liveops.RemotePayload{}, fmt.Errorf("decode live status: %w", err)
	}

	return payload, nil
}
