package server

import (
	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WaitForData streams every byte produced by the pipeline's stdout and
// stderr, replaying anything already buffered before this call attached.
func (s *ProcessPipelineServer) WaitForData(req *apiv1.WaitForDataRequest, stream grpc.ServerStreamingServer[apiv1.WaitForDataResponse]) error {
	e, ok := s.get(req.GetPipelineId())
	if !ok {
		return status.Errorf(codes.NotFound, "pipeline not found: %s", req.GetPipelineId())
	}

	ctx := stream.Context()
	stdout := e.stdout.Subscribe(16)
	stderr := e.stderr.Subscribe(16)

	for {
		if stdout == nil && stderr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case chunk, ok := <-stdout:
			if !ok {
				stdout = nil
				continue
			}
			if err := stream.Send(&apiv1.WaitForDataResponse{Pipe: apiv1.WaitForDataResponse_PIPE_STDOUT, Data: chunk}); err != nil {
				return err
			}
		case chunk, ok := <-stderr:
			if !ok {
				stderr = nil
				continue
			}
			if err := stream.Send(&apiv1.WaitForDataResponse{Pipe: apiv1.WaitForDataResponse_PIPE_STDERR, Data: chunk}); err != nil {
				return err
			}
		}
	}
}
