package server

import (
	"context"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kill requests termination of a running pipeline. The transition to a
// terminal state is only observable through the following WaitForExit,
// matching pgroup.Group's own Kill contract.
func (s *ProcessPipelineServer) Kill(ctx context.Context, req *apiv1.KillRequest) (*apiv1.KillResponse, error) {
	e, ok := s.get(req.GetPipelineId())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "pipeline not found: %s", req.GetPipelineId())
	}
	e.group.Kill()
	return &apiv1.KillResponse{}, nil
}
