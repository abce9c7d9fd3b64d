// Package signals ties command execution to OS interrupt signals. This is a
// leaf package: stdlib only, no internal imports, no logging.
package signals

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// SignalError is the cancellation cause of a context canceled by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("interrupted by %s", e.Signal)
}

// ExitCode returns the conventional shell exit status for the signal,
// 128 plus the signal number.
func (e *SignalError) ExitCode() int {
	if s, ok := e.Signal.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}

// SetupSignalContext creates a context that's canceled on SIGINT/SIGTERM.
// The cause of the cancellation, available via context.Cause, is a
// *SignalError.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return notifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func notifyContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sigs...)

	go func() {
		select {
		case sig := <-sigChan:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, func() { cancel(context.Canceled) }
}
