package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fleetform/internal/logging"
	"fleetform/pkg/domain"
)

var errInterrupted = errors.New("interrupted")

// createLogger configures the application logger. Outside debug mode
// it is a no-op so nothing interleaves with the prompt flow.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// cancelReader wraps a blocking reader (os.Stdin) and fails the read
// once the cancel channel closes, so a signal can unblock a prompt.
type cancelReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func newCancelReader(base io.Reader, cancel <-chan struct{}) *cancelReader {
	return &cancelReader{base: base, cancel: cancel}
}

func (r *cancelReader) Read(p []byte) (int, error) {
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}

	n, err := r.base.Read(p)

	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}
	return n, err
}

// isCleanStop reports whether err marks an operator-driven stop
// (signal or closed stdin) rather than a failure. Those exit 0, in
// line with an interactive tool that was simply dismissed.
func isCleanStop(err error) bool {
	return errors.Is(err, errInterrupted) ||
		errors.Is(err, domain.ErrInputClosed)
}
