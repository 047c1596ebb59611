package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.AnswerStore on Redis. It backs the
// persistent wizard mode: every validated answer is mirrored here so
// a restarted process can resume from stored values.
type Store struct {
	client *backend.Client
	prefix string
}

// Option configures the Store.
type Option func(*Store)

// WithPrefix sets the key prefix for all answers.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewFromClient creates a Store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "fleetform:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// GetField returns the stored value for key, or "" when unset.
func (s *Store) GetField(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, nil
}

// SetField stores a scalar value under key.
func (s *Store) SetField(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// AppendItem appends value to the list under key (RPUSH) and returns
// the new length.
func (s *Store) AppendItem(ctx context.Context, key, value string) (int64, error) {
	n, err := s.client.RPush(ctx, s.key(key), value).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to append to %s: %w", key, err)
	}
	return n, nil
}

// ListItems returns the items in [start, stop] (LRANGE semantics).
func (s *Store) ListItems(ctx context.Context, key string, start, stop int64) ([]string, error) {
	items, err := s.client.LRange(ctx, s.key(key), start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return items, nil
}

// ListLen returns the length of the list under key.
func (s *Store) ListLen(ctx context.Context, key string) (int64, error) {
	n, err := s.client.LLen(ctx, s.key(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to measure %s: %w", key, err)
	}
	return n, nil
}

// TrimList shrinks the list under key to at most max items.
// LTRIM cannot express an empty keep-range, so max == 0 deletes the
// key instead.
func (s *Store) TrimList(ctx context.Context, key string, max int64) error {
	if max <= 0 {
		if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
		return nil
	}
	if err := s.client.LTrim(ctx, s.key(key), 0, max-1).Err(); err != nil {
		return fmt.Errorf("failed to trim %s: %w", key, err)
	}
	return nil
}

// Flush removes every key under the store's prefix. Scoping the wipe
// to the prefix keeps an instance from clobbering unrelated data in a
// shared database.
func (s *Store) Flush(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to flush: %w", err)
		}
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
