//go:build unix

package pgroup

import (
	"errors"
	"fmt"
	"syscall"
	"time"
)

// WaitForExit drains every pipe, reaps every child in command order, and
// decodes the last stage's status into a terminal State. It returns
// (false, nil) if the caller's own timeout expired first (the pipeline is
// still running; call again), and (true, err) once the run is finished —
// err is non-nil only when the terminal State is StateError.
//
// If the Group is not currently executing, it returns (true, nil)
// immediately, matching the original engine's "nothing to wait for"
// contract.
func (g *Group) WaitForExit(timeout *time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateExecuting {
		return true, nil
	}

	d, err := g.waitForDataLocked(0, timeout)
	if err != nil {
		g.closeRemainingPipesLocked()
		return true, err
	}
	if d.Pipe == PipeTimeout {
		return false, nil
	}

	g.closeRemainingPipesLocked()
	g.reapLocked()
	g.releaseSigchldLocked()
	if g.pipeline != nil {
		_ = g.pipeline.Close()
		g.pipeline = nil
	}

	if g.state == StateError {
		return true, errors.New(g.errorMessage)
	}
	return true, nil
}

func (g *Group) reapLocked() {
	for i, cmd := range g.cmds {
		err := cmd.Wait()
		if cmd.ProcessState == nil {
			if g.state != StateError {
				g.state = StateError
				g.errorMessage = fmt.Sprintf("waitpid: %v", err)
			}
			continue
		}
		ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if ok {
			g.perCommandRawStatus[i] = int(ws)
		}
	}

	if g.state == StateError {
		return
	}
	if g.selectError {
		g.state = StateError
		return
	}

	last := len(g.cmds) - 1
	ws := syscall.WaitStatus(g.perCommandRawStatus[last])

	switch {
	case g.killed:
		g.state = StateKilled
	case g.timeoutExpired:
		g.state = StateExpired
	case ws.Exited():
		g.state = StateExited
		g.exitValue = ws.ExitStatus()
		g.exitException = ExceptionNone
	case ws.Signaled():
		g.state = StateException
		g.exitException = signalException(ws.Signal())
	default:
		g.state = StateError
		g.errorMessage = "error getting child return code"
	}
}

func signalException(sig syscall.Signal) ExceptionCategory {
	switch sig {
	case syscall.SIGSEGV, syscall.SIGBUS:
		return ExceptionFault
	case syscall.SIGFPE:
		return ExceptionNumerical
	case syscall.SIGILL:
		return ExceptionIllegal
	case syscall.SIGINT:
		return ExceptionInterrupt
	default:
		return ExceptionOther
	}
}
