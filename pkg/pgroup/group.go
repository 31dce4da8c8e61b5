package pgroup

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/procgroup-go/procgroup/pkg/limits"
	"golang.org/x/sys/unix"
)

// Group is the ProcessGroup handle: an ordered pipeline of commands, each
// stage's stdout feeding the next stage's stdin. A Group is not safe for
// concurrent use by multiple goroutines; exactly one goroutine may drive
// Execute, WaitForData, WaitForExit, Kill and Close.
type Group struct {
	mu sync.Mutex

	commands [][]string
	workDir  string
	timeout  time.Duration

	state State

	childPIDs           []int
	perCommandRawStatus []int
	cmds                []*exec.Cmd

	pipeReadEnds [slotCount]fdguard
	pipesLeft    int
	readyMask    [slotCount]bool
	readBuffer   [readBufferSize]byte

	startTime   time.Time
	timeoutTime time.Time

	exitValue     int
	exitException ExceptionCategory
	errorMessage  string

	killed         bool
	timeoutExpired bool
	selectError    bool

	savedSigchld unix.Sigaction
	sigchldHeld  bool
	pipeline     limits.Pipeline
}

// New returns an empty Group in StateStarting.
func New() *Group {
	return &Group{state: StateStarting}
}

// Close waits for an in-flight run to finish (blocking indefinitely unless
// the caller already arranged a timeout) and releases every resource still
// held by the Group. Close is safe to call more than once.
func (g *Group) Close() error {
	g.mu.Lock()
	executing := g.state == StateExecuting
	g.mu.Unlock()

	if executing {
		for {
			done, err := g.WaitForExit(nil)
			if err != nil {
				break
			}
			if done {
				break
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.closeRemainingPipesLocked()
	if g.pipeline != nil {
		_ = g.pipeline.Close()
		g.pipeline = nil
	}
	return nil
}

// AddCommand appends a deep copy of argv to the pipeline. argv must be
// non-empty. On failure no partial command is installed.
func (g *Group) AddCommand(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("pgroup: AddCommand: argv must be non-empty")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	cp := make([]string, len(argv))
	copy(cp, argv)
	g.commands = append(g.commands, cp)
	return nil
}

// SetCommand clears all commands, then appends argv if it is non-empty.
// Passing a nil/empty argv just clears the pipeline.
func (g *Group) SetCommand(argv []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.commands = nil
	if len(argv) > 0 {
		cp := make([]string, len(argv))
		copy(cp, argv)
		g.commands = append(g.commands, cp)
	}
}

// SetWorkingDirectory stores the directory to chdir into inside every
// child just before exec. An empty string clears it. No validation is
// performed; the child reports any chdir failure through the error pipe.
func (g *Group) SetWorkingDirectory(dir string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.workDir = dir
}

// SetTimeout stores the process-lifetime timeout. Negative durations
// clamp to zero. Zero means "no timeout". Must be called before Execute.
func (g *Group) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.timeout = d
}

// State returns the Group's current lifecycle state.
func (g *Group) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// ExitValue returns the decoded exit code of the last pipeline stage.
// Only meaningful once State() == StateExited.
func (g *Group) ExitValue() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exitValue
}

// ExitException returns the decoded signal category of the last pipeline
// stage. Only meaningful once State() == StateException.
func (g *Group) ExitException() ExceptionCategory {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.exitException
}

// ExitCode returns the raw wait status of the last pipeline stage, the way
// waitpid(2) reported it, undecoded. Only meaningful once the Group has
// left StateExecuting.
func (g *Group) ExitCode() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.perCommandRawStatus) == 0 {
		return 0
	}
	return g.perCommandRawStatus[len(g.perCommandRawStatus)-1]
}

// ErrorString returns the engine's captured error message, or "" if the
// Group is not (and has never been) in StateError.
func (g *Group) ErrorString() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.errorMessage
}

// PerCommandExitStatus returns the raw wait status of each pipeline stage,
// in command order. Only populated after WaitForExit has reaped a run.
func (g *Group) PerCommandExitStatus() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]int, len(g.perCommandRawStatus))
	copy(out, g.perCommandRawStatus)
	return out
}

// Kill requests termination of every running child by sending SIGKILL.
// It is a no-op unless State() == StateExecuting, and idempotent. The
// actual transition to StateKilled happens in the following WaitForExit,
// not here.
func (g *Group) Kill() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.killLocked()
}

func (g *Group) killLocked() {
	if g.state != StateExecuting {
		return
	}
	g.killed = true
	g.forceKillChildrenLocked()
}
