package pgroup

import "os"

// fdguard owns a pipe end. The zero value is already closed. A guard is
// closed at most once and every close site nulls the slot, so a leaked or
// double-closed descriptor becomes visible as a nil-file bug rather than a
// silent kernel-level mistake.
type fdguard struct {
	f *os.File
}

func newFdguard(f *os.File) fdguard {
	return fdguard{f: f}
}

func (g *fdguard) ok() bool { return g.f != nil }

// fd returns the raw, blocking-mode descriptor backing this guard, or -1
// if the guard is closed. Calling Fd() switches the underlying *os.File out
// of the runtime poller and into blocking mode, which is required before
// handing the descriptor to a raw select(2) call.
func (g *fdguard) fd() int {
	if g.f == nil {
		return -1
	}
	return int(g.f.Fd())
}

// read performs a single read into buf, EINTR-safe by virtue of *os.File's
// own retry loop for interrupted syscalls.
func (g *fdguard) read(buf []byte) (int, error) {
	return g.f.Read(buf)
}

// close is idempotent.
func (g *fdguard) close() error {
	if g.f == nil {
		return nil
	}
	f := g.f
	g.f = nil
	return f.Close()
}
