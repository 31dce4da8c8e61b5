package pgroup

// State is the terminal-state sum type of a Group. It is monotonic once it
// leaves StateExecuting: a Group never re-enters StateStarting without a
// fresh New.
type State int

const (
	StateStarting State = iota
	StateExecuting
	StateExited
	StateException
	StateKilled
	StateExpired
	StateError
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateExecuting:
		return "Executing"
	case StateExited:
		return "Exited"
	case StateException:
		return "Exception"
	case StateKilled:
		return "Killed"
	case StateExpired:
		return "Expired"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ExceptionCategory classifies a signal-caused child death. It is only
// meaningful when State == StateException.
type ExceptionCategory int

const (
	ExceptionNone ExceptionCategory = iota
	ExceptionFault
	ExceptionIllegal
	ExceptionInterrupt
	ExceptionNumerical
	ExceptionOther
)

func (e ExceptionCategory) String() string {
	switch e {
	case ExceptionNone:
		return "None"
	case ExceptionFault:
		return "Fault"
	case ExceptionIllegal:
		return "Illegal"
	case ExceptionInterrupt:
		return "Interrupt"
	case ExceptionNumerical:
		return "Numerical"
	case ExceptionOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// PipeMask selects which pipes WaitForData should report data for. The
// termination-sentinel pipe is always monitored internally but is never a
// valid bit in a caller-supplied mask.
type PipeMask int

const (
	PipeStdout PipeMask = 1 << iota
	PipeStderr

	// PipeTimeout is a sentinel return value from WaitForData, never a bit
	// in a caller-supplied mask. It is distinct from any bitwise-OR of
	// PipeStdout/PipeStderr.
	PipeTimeout PipeMask = 1 << 30
)

// Data is a single delivery from WaitForData: the bytes read from one pipe
// during one call. The slice aliases the Group's internal scratch buffer
// and is only valid until the next call that may read from the same pipe
// (WaitForData or WaitForExit).
type Data struct {
	Pipe PipeMask
	Buf  []byte
}

// index into the three-slot descriptor array kept internally by a Group.
type pipeSlot int

const (
	slotStdout pipeSlot = iota
	slotStderr
	slotTerm
	slotCount
)

// readBufferSize is the scratch buffer size a Group reads into per pipe
// wakeup, matching KWSYSPE_PIPE_BUFFER_SIZE in the original implementation.
const readBufferSize = 1024
