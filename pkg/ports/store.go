package ports

import "context"

// AnswerStore defines the persistence interface for wizard answers.
// Scalar fields and ordered lists share one key space; Flush wipes
// everything belonging to the session.
//
// Implementations must treat a missing scalar as the empty string and
// a missing list as an empty sequence, so callers never distinguish
// "never answered" from "answered with nothing" — blank answers are
// rejected by validation before they reach the store.
type AnswerStore interface {
	// GetField returns the stored value for key, or "" when unset.
	GetField(ctx context.Context, key string) (string, error)

	// SetField stores a scalar value under key.
	SetField(ctx context.Context, key, value string) error

	// AppendItem appends value to the list under key and returns the
	// new list length.
	AppendItem(ctx context.Context, key, value string) (int64, error)

	// ListItems returns the items in [start, stop] (inclusive, redis
	// LRANGE semantics: negative indexes count from the end).
	ListItems(ctx context.Context, key string, start, stop int64) ([]string, error)

	// ListLen returns the length of the list under key (0 when unset).
	ListLen(ctx context.Context, key string) (int64, error)

	// TrimList shrinks the list under key to at most max items,
	// keeping the oldest entries.
	TrimList(ctx context.Context, key string, max int64) error

	// Flush removes every key owned by the session.
	Flush(ctx context.Context) error
}
