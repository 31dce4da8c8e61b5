package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	apiv1 "github.com/procgroup-go/procgroup/api/v1"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var workDir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run -- <cmd1> [args...] [\"|\" <cmd2> [args...] ...]",
		Short: "Start a pipeline of one or more piped commands",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("at least one command is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stages := splitStages(args)
			if len(stages) == 0 {
				return errors.New("no commands given")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			conn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &apiv1.ExecuteRequest{WorkingDirectory: workDir}
			for _, argv := range stages {
				req.Commands = append(req.Commands, &apiv1.CommandSpec{Argv: argv})
			}
			if timeout > 0 {
				req.TimeoutMs = timeout.Milliseconds()
			}

			client := apiv1.NewProcessPipelineServiceClient(conn)
			resp, err := client.Execute(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(resp.GetPipelineId())
			return nil
		},
	}

	cmd.Flags().StringVar(&workDir, "dir", "", "working directory for every stage")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "process-lifetime timeout")
	return cmd
}

// splitStages breaks a flat argv list into pipeline stages on the literal
// token "|", the way a shell breaks a pipeline into commands.
func splitStages(args []string) [][]string {
	var stages [][]string
	var cur []string
	for _, a := range args {
		if a == "|" {
			if len(cur) > 0 {
				stages = append(stages, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, a)
	}
	if len(cur) > 0 {
		stages = append(stages, cur)
	}
	return stages
}
