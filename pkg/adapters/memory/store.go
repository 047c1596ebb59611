package memory

import (
	"context"
	"sync"
)

// Store implements ports.AnswerStore in memory. It backs the
// ephemeral wizard mode: answers live for one process run and a
// Flush resets everything for a restarted session.
// Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	fields map[string]string
	lists  map[string][]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		fields: make(map[string]string),
		lists:  make(map[string][]string),
	}
}

// GetField returns the stored value, or "" when unset.
func (s *Store) GetField(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fields[key], nil
}

// SetField stores a scalar value.
func (s *Store) SetField(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[key] = value
	return nil
}

// AppendItem appends to the list and returns the new length.
func (s *Store) AppendItem(ctx context.Context, key, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[key] = append(s.lists[key], value)
	return int64(len(s.lists[key])), nil
}

// ListItems returns items in [start, stop], redis LRANGE semantics.
func (s *Store) ListItems(ctx context.Context, key string, start, stop int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[key]
	n := int64(len(list))

	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return []string{}, nil
	}

	// Copy so callers can't mutate store state through the slice.
	out := make([]string, stop-start+1)
	copy(out, list[start:stop+1])
	return out, nil
}

// ListLen returns the list length (0 when unset).
func (s *Store) ListLen(ctx context.Context, key string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.lists[key])), nil
}

// TrimList shrinks the list to at most max items, keeping the oldest.
func (s *Store) TrimList(ctx context.Context, key string, max int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if max <= 0 {
		delete(s.lists, key)
		return nil
	}
	if list := s.lists[key]; int64(len(list)) > max {
		s.lists[key] = list[:max]
	}
	return nil
}

// Flush clears every key.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = make(map[string]string)
	s.lists = make(map[string][]string)
	return nil
}
