package server

import (
	"context"
	"time"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/procgroup-go/procgroup/pkg/pgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WaitForExit blocks server-side, up to the request's own deadline, until
// the pipeline finishes or that deadline passes, then reports the current
// terminal state (Done is false if it hasn't finished yet).
func (s *ProcessPipelineServer) WaitForExit(ctx context.Context, req *apiv1.WaitForExitRequest) (*apiv1.WaitForExitResponse, error) {
	e, ok := s.get(req.GetPipelineId())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "pipeline not found: %s", req.GetPipelineId())
	}

	var timeout *time.Duration
	if ms := req.GetTimeoutMs(); ms > 0 {
		d := time.Duration(ms) * time.Millisecond
		timeout = &d
	}

	done, err := e.group.WaitForExit(timeout)
	if err != nil && e.group.State() != pgroup.StateError {
		return nil, status.Errorf(codes.Internal, "wait for exit: %v", err)
	}

	resp := &apiv1.WaitForExitResponse{
		Done:         done,
		State:        toProtoState(e.group.State()),
		ExitValue:    int32(e.group.ExitValue()),
		Exception:    toProtoException(e.group.ExitException()),
		ErrorMessage: e.group.ErrorString(),
	}
	return resp, nil
}

func toProtoState(s pgroup.State) apiv1.WaitForExitResponse_State {
	switch s {
	case pgroup.StateExecuting:
		return apiv1.WaitForExitResponse_STATE_EXECUTING
	case pgroup.StateExited:
		return apiv1.WaitForExitResponse_STATE_EXITED
	case pgroup.StateException:
		return apiv1.WaitForExitResponse_STATE_EXCEPTION
	case pgroup.StateKilled:
		return apiv1.WaitForExitResponse_STATE_KILLED
	case pgroup.StateExpired:
		return apiv1.WaitForExitResponse_STATE_EXPIRED
	case pgroup.StateError:
		return apiv1.WaitForExitResponse_STATE_ERROR
	default:
		return apiv1.WaitForExitResponse_STATE_UNSPECIFIED
	}
}

func toProtoException(e pgroup.ExceptionCategory) apiv1.WaitForExitResponse_Exception {
	switch e {
	case pgroup.ExceptionFault:
		return apiv1.WaitForExitResponse_EXCEPTION_FAULT
	case pgroup.ExceptionIllegal:
		return apiv1.WaitForExitResponse_EXCEPTION_ILLEGAL
	case pgroup.ExceptionInterrupt:
		return apiv1.WaitForExitResponse_EXCEPTION_INTERRUPT
	case pgroup.ExceptionNumerical:
		return apiv1.WaitForExitResponse_EXCEPTION_NUMERICAL
	case pgroup.ExceptionOther:
		return apiv1.WaitForExitResponse_EXCEPTION_OTHER
	default:
		return apiv1.WaitForExitResponse_EXCEPTION_NONE
	}
}
