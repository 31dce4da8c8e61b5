package main

import (
	"context"
	"time"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/spf13/cobra"
)

func newKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill <pipeline_id>",
		Short: "Send SIGKILL to every stage of a running pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			conn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewProcessPipelineServiceClient(conn)
			_, err = client.Kill(ctx, &apiv1.KillRequest{PipelineId: args[0]})
			return err
		},
	}
}
