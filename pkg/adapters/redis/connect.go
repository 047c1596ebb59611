package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"fleetform/pkg/domain"
)

// Reconnect policy. The wizard has no degraded mode without its
// store, so exhaustion is fatal to the caller.
const (
	maxConnectAttempts = 20
	maxConnectElapsed  = time.Hour
	initialConnectWait = 500 * time.Millisecond
	maxConnectWait     = 2 * time.Minute
)

// Connect dials the store at addr, retrying with exponential backoff
// until the server answers a PING, the attempt cap is hit, or the
// total retry window elapses. Failures wrap domain.ErrStoreUnavailable.
func Connect(ctx context.Context, addr string, logger *slog.Logger, opts ...Option) (*Store, error) {
	client := backend.NewClient(&backend.Options{Addr: addr})

	wait := initialConnectWait
	deadline := time.Now().Add(maxConnectElapsed)

	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		err := client.Ping(ctx).Err()
		if err == nil {
			return NewFromClient(client, opts...), nil
		}
		lastErr = err

		if attempt == maxConnectAttempts || time.Now().Add(wait).After(deadline) {
			break
		}

		logger.Warn("store unreachable, retrying",
			"addr", addr,
			"attempt", attempt,
			"wait", wait)

		select {
		case <-ctx.Done():
			_ = client.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		wait *= 2
		if wait > maxConnectWait {
			wait = maxConnectWait
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("%w at %s: %v", domain.ErrStoreUnavailable, addr, lastErr)
}
