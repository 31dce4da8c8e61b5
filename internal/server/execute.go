package server

import (
	"context"
	"time"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/procgroup-go/procgroup/pkg/output"
	"github.com/procgroup-go/procgroup/pkg/pgroup"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Execute installs the requested pipeline, starts it, and returns a
// pipeline_id the caller uses for every subsequent RPC. It never resolves
// an executable itself; each CommandSpec.Argv is already a complete
// command vector.
func (s *ProcessPipelineServer) Execute(ctx context.Context, req *apiv1.ExecuteRequest) (*apiv1.ExecuteResponse, error) {
	if len(req.GetCommands()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one command is required")
	}

	s.mu.RLock()
	atCapacity := s.maxPipelines > 0 && len(s.pipelines) >= s.maxPipelines
	s.mu.RUnlock()
	if atCapacity {
		return nil, status.Errorf(codes.ResourceExhausted, "server is tracking the maximum of %d pipelines", s.maxPipelines)
	}

	g := pgroup.New()
	for _, c := range req.GetCommands() {
		if err := g.AddCommand(c.GetArgv()); err != nil {
			_ = g.Close()
			return nil, status.Errorf(codes.InvalidArgument, "invalid command: %v", err)
		}
	}
	if wd := req.GetWorkingDirectory(); wd != "" {
		g.SetWorkingDirectory(wd)
	}
	if ms := req.GetTimeoutMs(); ms > 0 {
		g.SetTimeout(time.Duration(ms) * time.Millisecond)
	}

	stdout := output.NewStorage()
	stderr := output.NewStorage()

	if err := g.Execute(); err != nil {
		_ = g.Close()
		return nil, status.Errorf(codes.Aborted, "error starting pipeline: %v", err)
	}
	go output.Pump(g, stdout, stderr)

	id := uuid.New().String()
	s.mu.Lock()
	s.pipelines[id] = &pipelineEntry{group: g, stdout: stdout, stderr: stderr}
	s.mu.Unlock()

	logger.Printf("%s: started pipeline with %d stages", id, len(req.GetCommands()))
	return &apiv1.ExecuteResponse{PipelineId: id}, nil
}
