package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <patterns...>",
	Short: "Change distribution version or default",
	Long: `Converts matching distributions to another architecture version with
--version, or marks a distribution as the default with --default.
Distributions already in the requested configuration are skipped with
a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().Int("version", 0, "Target architecture version (1 or 2)")
	setCmd.Flags().Bool("default", false, "Mark the matching distribution as default")
	setCmd.Flags().Bool("passthru", false, "Print the updated records afterwards")
}

func runSet(cmd *cobra.Command, args []string) error {
	version, _ := cmd.Flags().GetInt("version")
	setDefault, _ := cmd.Flags().GetBool("default")
	passthru, _ := cmd.Flags().GetBool("passthru")

	if version == 0 && !setDefault {
		return fmt.Errorf("nothing to change: pass --version and/or --default")
	}

	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, args)
	if err != nil {
		return err
	}

	if version != 0 {
		updated, err := c.SetVersion(ctx, targets, version, passthru && !setDefault)
		if err != nil {
			return err
		}
		if passthru && !setDefault {
			return printDistributions(updated)
		}
	}

	if setDefault {
		updated, err := c.SetDefault(ctx, targets, passthru)
		if err != nil {
			return err
		}
		if passthru {
			return printDistributions(updated)
		}
	}

	return nil
}
