//go:build unix

package pgroup

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/procgroup-go/procgroup/pkg/limits"
	"golang.org/x/sys/unix"
)

// Execute spawns every installed command, wiring stage i's stdout into
// stage i+1's stdin. It returns once every stage has an assigned PID (or
// transitions the Group to StateError and returns a non-nil error). It
// does not block waiting for output or exit; use WaitForData/WaitForExit
// for that.
func (g *Group) Execute() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateExecuting {
		return fmt.Errorf("pgroup: Execute: already executing")
	}
	if len(g.commands) == 0 {
		return g.failLocked("no commands installed")
	}

	sigchldGuard.Lock()
	old, err := acquireSigchld()
	if err != nil {
		sigchldGuard.Unlock()
		return g.failLocked(fmt.Sprintf("sigaction: %v", err))
	}
	g.savedSigchld = old
	g.sigchldHeld = true

	if err := g.executeLocked(); err != nil {
		g.releaseSigchldLocked()
		return err
	}
	return nil
}

func (g *Group) releaseSigchldLocked() {
	if !g.sigchldHeld {
		return
	}
	_ = restoreSigchld(g.savedSigchld)
	g.sigchldHeld = false
	sigchldGuard.Unlock()
}

func (g *Group) executeLocked() error {
	n := len(g.commands)
	g.childPIDs = make([]int, n)
	g.perCommandRawStatus = make([]int, n)
	cmds := make([]*exec.Cmd, n)

	pl, err := limits.NewPipeline()
	if err != nil {
		return g.failLocked(fmt.Sprintf("resource isolation: %v", err))
	}
	g.pipeline = pl

	stderrRead, stderrWrite, err := os.Pipe()
	if err != nil {
		return g.abortSetup(cmds, 0, fmt.Sprintf("pipe: %v", err))
	}
	termRead, termWrite, err := os.Pipe()
	if err != nil {
		_ = stderrRead.Close()
		_ = stderrWrite.Close()
		return g.abortSetup(cmds, 0, fmt.Sprintf("pipe: %v", err))
	}

	g.startTime = monotonicNow()
	g.timeoutTime = time.Time{}

	var prevStdout *os.File
	for i, argv := range g.commands {
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stderr = stderrWrite
		cmd.ExtraFiles = []*os.File{termWrite}
		if g.workDir != "" {
			cmd.Dir = g.workDir
		}

		attr, attrCloser, attrErr := g.pipeline.Attrs()
		if attrErr == nil {
			cmd.SysProcAttr = attr
		}

		if i == 0 {
			cmd.Stdin = os.Stdin
		} else {
			cmd.Stdin = prevStdout
		}

		last := i == n-1
		stdoutRead, stdoutWrite, err := os.Pipe()
		if err != nil {
			if attrCloser != nil {
				_ = attrCloser.Close()
			}
			_ = stderrRead.Close()
			_ = stderrWrite.Close()
			_ = termRead.Close()
			_ = termWrite.Close()
			if prevStdout != nil {
				_ = prevStdout.Close()
			}
			return g.abortSetup(cmds, i, fmt.Sprintf("pipe: %v", err))
		}
		cmd.Stdout = stdoutWrite

		startErr := cmd.Start()
		if attrCloser != nil {
			_ = attrCloser.Close()
		}
		if startErr != nil {
			_ = stdoutRead.Close()
			_ = stdoutWrite.Close()
			_ = stderrRead.Close()
			_ = stderrWrite.Close()
			_ = termRead.Close()
			_ = termWrite.Close()
			if prevStdout != nil {
				_ = prevStdout.Close()
			}
			return g.abortSetup(cmds, i, execFailureMessage(argv[0], startErr))
		}

		// Parent no longer needs the write end of this stage's stdout, nor
		// the previous stage's read end (both were duped into the child).
		_ = stdoutWrite.Close()
		if prevStdout != nil {
			_ = prevStdout.Close()
		}

		cmds[i] = cmd
		g.childPIDs[i] = cmd.Process.Pid

		if last {
			g.pipeReadEnds[slotStdout] = newFdguard(stdoutRead)
		} else {
			prevStdout = stdoutRead
		}
	}

	// All children spawned: the parent's copies of the shared write ends
	// must close now, or the termination pipe will never see EOF.
	_ = stderrWrite.Close()
	_ = termWrite.Close()

	g.pipeReadEnds[slotStderr] = newFdguard(stderrRead)
	g.pipeReadEnds[slotTerm] = newFdguard(termRead)
	g.pipesLeft = int(slotCount)
	for i := range g.readyMask {
		g.readyMask[i] = false
	}
	g.cmds = cmds
	g.state = StateExecuting
	g.killed = false
	g.timeoutExpired = false
	g.selectError = false
	g.errorMessage = ""
	return nil
}

// abortSetup kills every already-started stage and transitions the Group
// to StateError. cmds[0:started] hold live processes; cmds[started] may or
// may not have gotten a PID depending on where the caller aborted.
func (g *Group) abortSetup(cmds []*exec.Cmd, started int, msg string) error {
	for i := 0; i < started; i++ {
		if cmds[i] != nil && cmds[i].Process != nil {
			_ = unix.Kill(cmds[i].Process.Pid, unix.SIGKILL)
			_, _ = cmds[i].Process.Wait()
		}
	}
	return g.failLocked(msg)
}

func (g *Group) failLocked(msg string) error {
	g.state = StateError
	g.errorMessage = msg
	return fmt.Errorf("pgroup: %s", msg)
}

// execFailureMessage renders the same information the original engine's
// error-report pipe would have carried: the OS-level reason exec (or the
// chdir preceding it) failed. os/exec's Start returns this synchronously,
// without the caller blocking on the child's eventual exit, which is the
// same observable contract the error-report pipe handshake provides.
func execFailureMessage(name string, err error) string {
	return fmt.Sprintf("%s: %v", name, err)
}
