package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wslkit/wslctl/src/common/paths"
	"github.com/wslkit/wslctl/src/wslctl/internal/output"
	"github.com/wslkit/wslctl/src/wslctl/internal/wsl"
)

var exportCmd = &cobra.Command{
	Use:   "export <pattern> <destination>",
	Short: "Export distributions to archive or disk files",
	Long: `Exports every distribution matching the pattern. When the destination
is an existing directory each distribution gets its own file named
after it; otherwise the destination is the output file itself and only
a single distribution may match. Existing files are never overwritten.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "auto", "Export format (auto, tar, vhdx)")
	exportCmd.ValidArgsFunction = completionDistributionNames
}

func runExport(cmd *cobra.Command, args []string) error {
	formatToken, _ := cmd.Flags().GetString("format")
	format, ok := wsl.ParseFormat(formatToken)
	if !ok {
		return fmt.Errorf("unknown export format %q", formatToken)
	}

	c := getClient()
	ctx := context.Background()

	targets, err := c.Resolve(ctx, args[:1])
	if err != nil {
		return err
	}

	destination := paths.Expand(args[1])
	if len(targets) > 1 && !paths.IsDir(destination) {
		return fmt.Errorf("%d distributions match %q but destination %q is not a directory",
			len(targets), args[0], destination)
	}

	for _, target := range targets {
		written, err := c.Export(ctx, target, destination, format)
		if err != nil {
			return err
		}
		output.PrintMessage(fmt.Sprintf("Distribution %q exported to %s", target.Name, written))
	}
	return nil
}
