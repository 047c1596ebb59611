package domain

import "errors"

// ErrStoreUnavailable is returned when the answer store cannot be
// reached after exhausting the bounded reconnect policy.
var ErrStoreUnavailable = errors.New("answer store unavailable")

// ErrInputClosed is returned when the terminal input stream ends
// before the wizard obtained an answer.
var ErrInputClosed = errors.New("input stream closed")
