package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "procpipe",
		Short:         "Process pipeline execution client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newWaitCmd())
	root.AddCommand(newKillCmd())
	root.AddCommand(newLogsCmd())

	return root
}
