//go:build unix

package pgroup

import (
	"sync"

	"golang.org/x/sys/unix"
)

// sigchldGuard serializes Execute..WaitForExit cycles across every Group in
// the process, because SIGCHLD disposition is process-wide state. Only one
// Group may be mid-run at a time; a second Execute blocks until the first
// Group finishes (or errors out of Execute).
var sigchldGuard sync.Mutex

// acquireSigchld installs the default SIGCHLD disposition, retrying on
// EINTR, and returns the previous disposition so it can be restored later.
// The sigchldGuard mutex must already be held by the caller.
func acquireSigchld() (unix.Sigaction, error) {
	var old unix.Sigaction
	def := unix.Sigaction{Handler: unix.SIG_DFL}
	for {
		err := unix.Sigaction(unix.SIGCHLD, &def, &old)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return unix.Sigaction{}, err
		}
		return old, nil
	}
}

// restoreSigchld reinstalls a disposition saved by acquireSigchld.
func restoreSigchld(old unix.Sigaction) error {
	for {
		err := unix.Sigaction(unix.SIGCHLD, &old, nil)
		if err == unix.EINTR {
			continue
		}
		return err
	}
}
