// Package termtest opens pseudo-terminals for tests that need a real
// terminal file descriptor.
package termtest

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// OpenPTY opens a pseudo-terminal whose size is width columns by 25 rows and
// returns the terminal (slave) side. Both ends are closed when the test
// finishes. The test is skipped on platforms without pty support.
func OpenPTY(t testing.TB, width int) *os.File {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminal unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})

	if err := pty.Setsize(tty, &pty.Winsize{Rows: 25, Cols: uint16(width)}); err != nil {
		t.Fatalf("set pty size: %v", err)
	}
	return tty
}

// DevNull opens the null device for writing and closes it when the test
// finishes. It stands in for output redirected away from a terminal.
func DevNull(t testing.TB) *os.File {
	t.Helper()

	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}
