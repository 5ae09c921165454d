package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Stop the shared virtual machine",
	Long: `Terminates all distributions and stops the shared WSL virtual
machine.`,
	Args: cobra.NoArgs,
	RunE: runShutdown,
}

func runShutdown(cmd *cobra.Command, args []string) error {
	return getClient().Shutdown(context.Background())
}
