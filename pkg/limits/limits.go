// Package limits supplies the per-platform process attributes and
// resource isolation for one pipeline run. Grounded on the teacher's
// runner/linux_utils.go and runner/darwin_utils.go (GetSysProcAttr,
// KillCgroup, CleanupCgroup), generalized from one cgroup per process to
// one cgroup per pipeline group, so a single Kill reaches every stage.
package limits

import (
	"io"
	"syscall"
)

// Pipeline scopes resource isolation to one Execute..WaitForExit run. Attrs
// is called once per pipeline stage, before it is spawned, and may return a
// Closer the caller must keep open across cmd.Start() and close only once
// Start returns — the way the teacher's GetSysProcAttr/SysProcAttr.File
// pairing works, since a cgroup fd handed to UseCgroupFD must stay valid
// until the fork actually happens. Kill is a best-effort attempt to
// terminate every stage placed in the pipeline in one shot, ahead of the
// engine's own per-PID SIGKILL loop; Close releases any kernel resources
// (e.g. a cgroup directory) once the run has been reaped.
type Pipeline interface {
	Attrs() (*syscall.SysProcAttr, io.Closer, error)
	Kill() error
	Close() error
}
