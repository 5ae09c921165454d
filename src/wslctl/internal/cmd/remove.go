package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <patterns...>",
	Aliases: []string{"rm", "unregister"},
	Short:   "Unregister distributions",
	Long: `Unregisters every distribution matching the given name patterns and
deletes its data. There is no undo.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, args)
	if err != nil {
		return err
	}

	return c.Unregister(ctx, targets)
}
