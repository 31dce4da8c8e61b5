package main

import (
	"context"
	"io"
	"os"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs <pipeline_id>",
		Short: "Stream a pipeline's stdout/stderr from the beginning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			conn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewProcessPipelineServiceClient(conn)
			stream, err := client.WaitForData(ctx, &apiv1.WaitForDataRequest{PipelineId: args[0]})
			if err != nil {
				return err
			}
			for {
				msg, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				var w io.Writer
				switch msg.GetPipe() {
				case apiv1.WaitForDataResponse_PIPE_STDOUT:
					w = os.Stdout
				case apiv1.WaitForDataResponse_PIPE_STDERR:
					w = os.Stderr
				}
				if w != nil {
					if _, err := w.Write(msg.GetData()); err != nil {
						return err
					}
				}
			}
		},
	}
}
