package pgroup

import (
	"strings"
	"testing"
	"time"
)

func mustDrain(t *testing.T, g *Group, mask PipeMask) []byte {
	t.Helper()
	var out []byte
	for {
		d, err := g.WaitForData(mask, nil)
		if err != nil {
			t.Fatalf("WaitForData: %v", err)
		}
		if d.Pipe == 0 {
			break
		}
		out = append(out, d.Buf...)
	}
	return out
}

func waitForExit(t *testing.T, g *Group) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		done, err := g.WaitForExit(nil)
		if err != nil {
			t.Fatalf("WaitForExit: %v", err)
		}
		if done {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("WaitForExit never completed")
		}
	}
}

// S1: single command, normal exit, exit code observed.
func TestSingleCommandExitCode(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "exit 7"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	waitForExit(t, g)
	if g.State() != StateExited {
		t.Fatalf("expected StateExited, got %v", g.State())
	}
	if g.ExitValue() != 7 {
		t.Fatalf("expected exit value 7, got %d", g.ExitValue())
	}
}

// S2: stdout and stderr are both observable through WaitForData.
func TestStdoutStderrCapture(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "echo out; echo err 1>&2"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	stdout := mustDrain(t, g, PipeStdout)
	if string(stdout) != "out\n" {
		t.Fatalf("stdout: got %q", stdout)
	}

	waitForExit(t, g)
	if g.State() != StateExited {
		t.Fatalf("expected StateExited, got %v", g.State())
	}
}

// S3: two-stage pipeline; stage 0's stdout feeds stage 1's stdin.
func TestTwoStagePipeline(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "printf 'a\\nb\\nc\\n'"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.AddCommand([]string{"wc", "-l"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := mustDrain(t, g, PipeStdout)
	waitForExit(t, g)
	if g.State() != StateExited || g.ExitValue() != 0 {
		t.Fatalf("expected clean exit, got state=%v value=%d", g.State(), g.ExitValue())
	}
	if strings.TrimSpace(string(out)) != "3" {
		t.Fatalf("expected wc -l output 3, got %q", out)
	}
}

// S4: process-lifetime timeout kills a long-running child.
func TestProcessTimeoutExpires(t *testing.T) {
	g := New()
	defer g.Close()
	g.SetTimeout(100 * time.Millisecond)
	if err := g.AddCommand([]string{"sh", "-c", "sleep 5"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
	if g.State() != StateExpired {
		t.Fatalf("expected StateExpired, got %v", g.State())
	}
}

// S5: Kill terminates a running pipeline and is observed as StateKilled.
func TestKillTerminatesPipeline(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "sleep 5"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	g.Kill()
	waitForExit(t, g)
	if g.State() != StateKilled {
		t.Fatalf("expected StateKilled, got %v", g.State())
	}
}

// S6: a signal-terminated child is reported as StateException with a
// decoded category.
func TestSignaledChildReportsException(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "kill -SEGV $$"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
	if g.State() != StateException {
		t.Fatalf("expected StateException, got %v", g.State())
	}
	if g.ExitException() != ExceptionFault {
		t.Fatalf("expected ExceptionFault, got %v", g.ExitException())
	}
}

// S7: an unresolvable executable name surfaces as StateError with a
// non-empty ErrorString, and never spawns a process.
func TestExecFailureReportsError(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"/no/such/executable-xyz"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err == nil {
		t.Fatalf("expected Execute to fail")
	}
	if g.State() != StateError {
		t.Fatalf("expected StateError, got %v", g.State())
	}
	if g.ErrorString() == "" {
		t.Fatalf("expected non-empty ErrorString")
	}
}

// P1: AddCommand rejects an empty argv and leaves the pipeline unchanged.
func TestAddCommandRejectsEmptyArgv(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand(nil); err == nil {
		t.Fatalf("expected error for empty argv")
	}
	if len(g.commands) != 0 {
		t.Fatalf("expected no commands installed")
	}
}

// SetCommand replaces rather than appends.
func TestSetCommandReplaces(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"true"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	g.SetCommand([]string{"false"})
	if len(g.commands) != 1 || g.commands[0][0] != "false" {
		t.Fatalf("expected SetCommand to replace, got %v", g.commands)
	}
}

// P3: negative timeouts clamp to zero (no timeout).
func TestNegativeTimeoutClampsToZero(t *testing.T) {
	g := New()
	defer g.Close()
	g.SetTimeout(-5 * time.Second)
	if g.timeout != 0 {
		t.Fatalf("expected clamped timeout 0, got %v", g.timeout)
	}
}

// P4: ErrorString is empty before any failure.
func TestErrorStringEmptyInitially(t *testing.T) {
	g := New()
	defer g.Close()
	if g.ErrorString() != "" {
		t.Fatalf("expected empty ErrorString, got %q", g.ErrorString())
	}
}

// P5: WaitForData honors a caller timeout shorter than the process's
// output delay, returning the PipeTimeout sentinel without disturbing
// the running pipeline.
func TestWaitForDataUserTimeout(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "sleep 0.3; echo done"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	short := 20 * time.Millisecond
	d, err := g.WaitForData(PipeStdout, &short)
	if err != nil {
		t.Fatalf("WaitForData: %v", err)
	}
	if d.Pipe != PipeTimeout {
		t.Fatalf("expected PipeTimeout, got %v", d.Pipe)
	}
	if short != 0 {
		t.Fatalf("expected caller timeout decremented to exactly 0, got %v", short)
	}
	if g.State() != StateExecuting {
		t.Fatalf("expected pipeline still executing, got %v", g.State())
	}

	mustDrain(t, g, PipeStdout)
	waitForExit(t, g)
	if g.State() != StateExited {
		t.Fatalf("expected StateExited, got %v", g.State())
	}
}

// Execute is rejected while already executing.
func TestExecuteRejectsReentry(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "sleep 0.2"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := g.Execute(); err == nil {
		t.Fatalf("expected second Execute to fail")
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
}

// P7: SIGCHLD disposition is serialized across concurrent Groups in the
// same process: two Executes racing must not deadlock or corrupt state,
// each pipeline reports its own correct exit value.
func TestConcurrentGroupsSerializeSigchld(t *testing.T) {
	done := make(chan int, 2)
	run := func(code string) {
		g := New()
		defer g.Close()
		if err := g.AddCommand([]string{"sh", "-c", "exit " + code}); err != nil {
			done <- -1
			return
		}
		if err := g.Execute(); err != nil {
			done <- -1
			return
		}
		deadline := time.Now().Add(5 * time.Second)
		for {
			doneWaiting, err := g.WaitForExit(nil)
			if err != nil || doneWaiting {
				break
			}
			if time.Now().After(deadline) {
				break
			}
		}
		done <- g.ExitValue()
	}
	go run("3")
	go run("4")

	got := map[int]bool{}
	for i := 0; i < 2; i++ {
		select {
		case v := <-done:
			got[v] = true
		case <-time.After(5 * time.Second):
			t.Fatalf("concurrent Executes did not finish in time")
		}
	}
	if !got[3] || !got[4] {
		t.Fatalf("expected exit values 3 and 4, got %v", got)
	}
}

// Close on a Group that never executed is a harmless no-op.
func TestCloseWithoutExecute(t *testing.T) {
	g := New()
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// P2: after a successful WaitForExit, every pipe slot has been closed.
func TestWaitForExitClosesAllPipes(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "echo hi"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.pipeReadEnds {
		if g.pipeReadEnds[i].ok() {
			t.Fatalf("pipe slot %d still open after WaitForExit", i)
		}
	}
}

// P6: a child killed by SIGFPE is reported as ExceptionNumerical.
func TestSignaledChildSIGFPEReportsNumerical(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "kill -FPE $$"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
	if g.State() != StateException {
		t.Fatalf("expected StateException, got %v", g.State())
	}
	if g.ExitException() != ExceptionNumerical {
		t.Fatalf("expected ExceptionNumerical, got %v", g.ExitException())
	}
}

// P6: a child killed by SIGILL is reported as ExceptionIllegal.
func TestSignaledChildSIGILLReportsIllegal(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "kill -ILL $$"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
	if g.State() != StateException {
		t.Fatalf("expected StateException, got %v", g.State())
	}
	if g.ExitException() != ExceptionIllegal {
		t.Fatalf("expected ExceptionIllegal, got %v", g.ExitException())
	}
}

// P6: a child killed by SIGINT is reported as ExceptionInterrupt.
func TestSignaledChildSIGINTReportsInterrupt(t *testing.T) {
	g := New()
	defer g.Close()
	if err := g.AddCommand([]string{"sh", "-c", "kill -INT $$"}); err != nil {
		t.Fatalf("AddCommand: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	mustDrain(t, g, PipeStdout|PipeStderr)
	waitForExit(t, g)
	if g.State() != StateException {
		t.Fatalf("expected StateException, got %v", g.State())
	}
	if g.ExitException() != ExceptionInterrupt {
		t.Fatalf("expected ExceptionInterrupt, got %v", g.ExitException())
	}
}
