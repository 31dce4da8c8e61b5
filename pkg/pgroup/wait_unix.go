//go:build unix

package pgroup

import (
	"io"
	"time"

	"golang.org/x/sys/unix"
)

// WaitForData blocks until data is available on a pipe the caller
// requested via mask, until the process or the caller's own timeout
// expires, or until every pipe has closed. timeout is both an input (the
// caller's budget for this single call) and an output (decremented by the
// time actually spent); pass nil for no per-call budget.
//
// The returned Data.Pipe is one of PipeStdout/PipeStderr when data was
// delivered, PipeTimeout when the caller's own timeout expired first (the
// pipeline is still alive; call again), or 0 when either the process
// timeout won (State transitions toward StateExpired, observable via
// State()) or every pipe has closed (the caller should call WaitForExit).
func (g *Group) WaitForData(mask PipeMask, timeout *time.Duration) (Data, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.waitForDataLocked(mask, timeout)
}

func (g *Group) waitForDataLocked(mask PipeMask, timeout *time.Duration) (Data, error) {
	var userStart time.Time
	if timeout != nil {
		userStart = monotonicNow()
	}

	if g.timeout > 0 && g.timeoutTime.IsZero() {
		g.timeoutTime = g.startTime.Add(g.timeout)
	}
	var userDeadline time.Time
	if timeout != nil {
		userDeadline = userStart.Add(*timeout)
	}
	deadline, processWins := earlierDeadline(g.timeoutTime, userDeadline)
	noDeadline := deadline.IsZero()

	expired := false
	for g.pipesLeft > 0 {
		if d, delivered := g.drainReadyLocked(mask); delivered {
			g.chargeUserTimeout(timeout, userStart)
			return d, nil
		}

		var set unix.FdSet
		max := -1
		for i := 0; i < int(slotCount); i++ {
			if g.pipeReadEnds[i].ok() {
				fd := g.pipeReadEnds[i].fd()
				fdSetAdd(&set, fd)
				if fd > max {
					max = fd
				}
			}
		}
		if max < 0 {
			break
		}

		var tv *unix.Timeval
		if !noDeadline {
			left := remaining(deadline)
			if left <= 0 {
				expired = true
				break
			}
			t := unix.NsecToTimeval(left.Nanoseconds())
			tv = &t
		}

		var numReady int
		var err error
		for {
			numReady, err = unix.Select(max+1, &set, nil, nil, tv)
			if err == unix.EINTR {
				continue
			}
			break
		}

		if numReady == 0 {
			expired = true
			break
		}
		if err != nil {
			g.errorMessage = err.Error()
			g.forceKillChildrenLocked()
			g.killed = false
			g.selectError = true
			g.pipesLeft = 0
			break
		}

		for i := 0; i < int(slotCount); i++ {
			if g.pipeReadEnds[i].ok() && fdSetHas(&set, g.pipeReadEnds[i].fd()) {
				g.readyMask[i] = true
			}
		}
	}

	g.chargeUserTimeout(timeout, userStart)

	if expired {
		if !processWins {
			return Data{Pipe: PipeTimeout}, nil
		}
		g.forceKillChildrenLocked()
		g.killed = false
		g.timeoutExpired = true
		g.pipesLeft = 0
	}
	return Data{}, nil
}

// drainReadyLocked reads once from every pipe marked ready by the previous
// select call. It returns the first requested delivery it finds; pipes
// that report EOF are closed and their slot is retired. Data read from a
// pipe the caller did not request in mask is discarded, matching the
// original engine's behavior of only reporting bits the caller asked for.
func (g *Group) drainReadyLocked(mask PipeMask) (Data, bool) {
	for i := 0; i < int(slotCount); i++ {
		if !g.readyMask[i] || !g.pipeReadEnds[i].ok() {
			continue
		}
		g.readyMask[i] = false

		n, err := g.pipeReadEnds[i].read(g.readBuffer[:])
		if n > 0 {
			switch pipeSlot(i) {
			case slotTerm:
				// Liveness sentinel only; never reported to the caller.
			case slotStdout:
				if mask&PipeStdout != 0 {
					return Data{Pipe: PipeStdout, Buf: g.readBuffer[:n]}, true
				}
			case slotStderr:
				if mask&PipeStderr != 0 {
					return Data{Pipe: PipeStderr, Buf: g.readBuffer[:n]}, true
				}
			}
			continue
		}
		if err != nil && err != io.EOF {
			// Treat any other read failure as end-of-stream for this pipe;
			// it will not be retried.
		}
		_ = g.pipeReadEnds[i].close()
		g.pipesLeft--
	}
	return Data{}, false
}

func (g *Group) chargeUserTimeout(timeout *time.Duration, start time.Time) {
	if timeout == nil {
		return
	}
	elapsed := monotonicNow().Sub(start)
	*timeout -= elapsed
	if *timeout < 0 {
		*timeout = 0
	}
}

// closeRemainingPipesLocked closes every pipe slot still open. It is called
// on every path out of WaitForExit, matching kwsysProcessCleanup's
// unconditional close of PipeReadEnds regardless of how the wait ended.
func (g *Group) closeRemainingPipesLocked() {
	for i := range g.pipeReadEnds {
		_ = g.pipeReadEnds[i].close()
	}
	g.pipesLeft = 0
}

func (g *Group) forceKillChildrenLocked() {
	if g.pipeline != nil {
		_ = g.pipeline.Kill()
	}
	for _, pid := range g.childPIDs {
		if pid > 0 {
			_ = unix.Kill(pid, unix.SIGKILL)
		}
	}
}
