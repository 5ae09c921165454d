package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wslkit/wslctl/src/wslctl/internal/output"
	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

var listCmd = &cobra.Command{
	Use:     "list [patterns...]",
	Aliases: []string{"ls"},
	Short:   "List installed distributions",
	Long: `Lists installed distributions with their state, architecture version
and default marker. Name patterns are case-insensitive globs; with
--online the catalog of installable distributions is listed instead.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("state", "", "Filter by state (Stopped, Running, Installing, Uninstalling, Converting)")
	listCmd.Flags().Int("version", 0, "Filter by architecture version (1 or 2)")
	listCmd.Flags().Bool("default", false, "Show only the default distribution")
	listCmd.Flags().Bool("online", false, "List distributions available for installation")
}

func runList(cmd *cobra.Command, args []string) error {
	c := getClient()
	ctx := context.Background()

	if online, _ := cmd.Flags().GetBool("online"); online {
		return runListOnline(ctx, c)
	}

	opts := &wsl.ListOptions{Names: args}
	if state, _ := cmd.Flags().GetString("state"); state != "" {
		parsed, err := wsl.ParseState(state)
		if err != nil {
			return err
		}
		opts.State = parsed
	}
	opts.Version, _ = cmd.Flags().GetInt("version")
	opts.Default, _ = cmd.Flags().GetBool("default")

	records, err := c.List(ctx, opts)
	if err != nil {
		return err
	}

	return printDistributions(records)
}

func runListOnline(ctx context.Context, c *wsl.Client) error {
	entries, err := c.ListOnline(ctx)
	if err != nil {
		return err
	}

	return output.PrintFormatted(getOutputFormat(), entries, func() error {
		if len(entries) == 0 {
			output.PrintMessage("No online distributions found.")
			return nil
		}

		rows := make([][]string, len(entries))
		for i, e := range entries {
			rows[i] = []string{e.Name, e.FriendlyName}
		}
		output.PrintTable([]string{"NAME", "FRIENDLY NAME"}, rows)
		return nil
	})
}
