package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop <patterns...>",
	Short: "Terminate running distributions",
	Long: `Terminates every running distribution matching the given name
patterns. Distributions that are not running are skipped with a
warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStop,
}

func init() {
	stopCmd.Flags().Bool("passthru", false, "Print the updated records afterwards")
}

func runStop(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, args)
	if err != nil {
		return err
	}

	passthru, _ := cmd.Flags().GetBool("passthru")
	updated, err := c.Stop(ctx, targets, passthru)
	if err != nil {
		return err
	}

	if passthru {
		return printDistributions(updated)
	}
	return nil
}
