package main

import (
	"context"
	"fmt"
	"time"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/spf13/cobra"
)

func newWaitCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait <pipeline_id>",
		Short: "Block until a pipeline finishes and print its terminal state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			conn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewProcessPipelineServiceClient(conn)
			req := &apiv1.WaitForExitRequest{PipelineId: args[0]}
			if timeout > 0 {
				req.TimeoutMs = timeout.Milliseconds()
			}

			resp, err := client.WaitForExit(ctx, req)
			if err != nil {
				return err
			}
			if !resp.GetDone() {
				fmt.Println("still running")
				return nil
			}
			fmt.Printf("state=%s exit_value=%d exception=%s error=%q\n",
				resp.GetState(), resp.GetExitValue(), resp.GetException(), resp.GetErrorMessage())
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "how long to block waiting for a terminal state")
	return cmd
}
