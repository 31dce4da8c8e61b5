// Package server implements the gRPC facade over pgroup.Group: one Group
// per pipeline_id, addressed the way the process runner it is grounded on
// addresses processes.
package server

import (
	"io"
	"log"
	"sync"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/procgroup-go/procgroup/pkg/output"
	"github.com/procgroup-go/procgroup/pkg/pgroup"
)

var logger = log.New(io.Discard, "server: ", log.LstdFlags)

// SetLogger redirects the package's diagnostic log output, which is
// discarded by default. The gRPC server binary calls this to surface
// per-pipeline lifecycle logging (start/stop, rejected requests) on
// stdout; tests and library embedders that don't want that noise leave it
// on the default io.Discard sink.
func SetLogger(w io.Writer) {
	logger = log.New(w, "server: ", log.LstdFlags)
}

type pipelineEntry struct {
	group  *pgroup.Group
	stdout *output.Storage
	stderr *output.Storage
}

// ProcessPipelineServer implements apiv1.ProcessPipelineServiceServer.
type ProcessPipelineServer struct {
	apiv1.UnimplementedProcessPipelineServiceServer

	mu           sync.RWMutex
	pipelines    map[string]*pipelineEntry
	maxPipelines int // 0 means unlimited
}

// New returns an empty ProcessPipelineServer. maxPipelines caps the number
// of concurrently tracked pipelines Execute will accept; 0 means no cap.
func New(maxPipelines int) *ProcessPipelineServer {
	return &ProcessPipelineServer{
		pipelines:    make(map[string]*pipelineEntry),
		maxPipelines: maxPipelines,
	}
}

func (s *ProcessPipelineServer) get(id string) (*pipelineEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.pipelines[id]
	return e, ok
}
