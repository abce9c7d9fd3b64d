package iostreams

import (
	"io"
	"sync"
)

// Guard is exclusive access to a writer. Unlock must be called exactly once.
type Guard interface {
	io.Writer
	Unlock()
}

// Lockable is a writer that can be held for a sequence of writes so that
// other writers cannot interleave.
type Lockable interface {
	Lock() Guard
}

// LockedWriter serializes access to an underlying writer. Plain Write calls
// take the lock for a single write; Lock holds it across several.
type LockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLockedWriter wraps w. If w is already a *LockedWriter it is returned
// unchanged.
func NewLockedWriter(w io.Writer) *LockedWriter {
	if lw, ok := w.(*LockedWriter); ok {
		return lw
	}
	return &LockedWriter{w: w}
}

// Write implements io.Writer.
func (l *LockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Lock implements Lockable.
func (l *LockedWriter) Lock() Guard {
	l.mu.Lock()
	return &writerGuard{l: l}
}

// Unwrap returns the underlying writer.
func (l *LockedWriter) Unwrap() io.Writer {
	return l.w
}

type writerGuard struct {
	l *LockedWriter
}

func (g *writerGuard) Write(p []byte) (int, error) {
	return g.l.w.Write(p)
}

func (g *writerGuard) Unlock() {
	g.l.mu.Unlock()
}
