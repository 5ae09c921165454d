package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// completionDistributionNames completes positional arguments with the
// names of installed distributions.
func completionDistributionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c := getClient()
	records, err := c.Snapshot(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	suggestions := make([]string, len(records))
	for i, d := range records {
		suggestions[i] = d.Name + "\t" + string(d.State)
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// completionDistributionFlag completes the --distribution flag
func completionDistributionFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completionDistributionNames(cmd, args, toComplete)
}

// completionOutputFormat provides completion for --output flag
func completionOutputFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"table", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
}

// completionDistributionState provides completion for --state flag
func completionDistributionState(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"Stopped", "Running", "Installing", "Uninstalling", "Converting"}, cobra.ShellCompDirectiveNoFileComp
}

// completionFormat provides completion for --format flag
func completionFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"auto", "tar", "vhdx"}, cobra.ShellCompDirectiveNoFileComp
}
