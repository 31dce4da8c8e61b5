package output

import (
	"time"

	"github.com/procgroup-go/procgroup/pkg/pgroup"
)

// Pump drains a Group's stdout and stderr into two Storages until the
// pipeline's pipes have all closed. It is meant to run in its own
// goroutine, started right after Execute, so multiple Subscribe readers
// (including ones attaching later, e.g. a gRPC stream) can all observe the
// same output regardless of when they attach.
func Pump(g *pgroup.Group, stdout, stderr *Storage) {
	for {
		d, err := g.WaitForData(pgroup.PipeStdout|pgroup.PipeStderr, nil)
		if err != nil {
			return
		}
		switch d.Pipe {
		case pgroup.PipeStdout:
			stdout.Append(append([]byte(nil), d.Buf...))
		case pgroup.PipeStderr:
			stderr.Append(append([]byte(nil), d.Buf...))
		case 0:
			stdout.Close()
			stderr.Close()
			return
		}
	}
}
