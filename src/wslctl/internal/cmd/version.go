package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wslkit/wslctl/src/wslctl/internal/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Shows the wslctl build version and optionally the WSL component versions.`,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("tool", false, "Also show WSL component versions")
}

func runVersion(cmd *cobra.Command, args []string) error {
	showTool, _ := cmd.Flags().GetBool("tool")

	format := getOutputFormat()
	if format == "json" || format == "yaml" {
		result := map[string]interface{}{
			"client": VersionInfo.Map(),
		}
		if showTool {
			info, err := getClient().ToolVersion(context.Background())
			if err != nil {
				result["tool_error"] = err.Error()
			} else {
				result["tool"] = info
			}
		}
		switch format {
		case "json":
			return output.PrintJSON(result)
		case "yaml":
			return output.PrintYAML(result)
		}
	}

	fmt.Printf("Client: %s\n", VersionInfo.Full())

	if showTool {
		info, err := getClient().ToolVersion(context.Background())
		if err != nil {
			return err
		}
		rows := [][]string{
			{"WSL", info.WSL},
			{"Kernel", info.Kernel},
			{"WSLg", info.WSLg},
			{"MSRDC", info.MSRDC},
			{"Direct3D", info.Direct3D},
			{"DXCore", info.DXCore},
			{"Windows", info.Windows},
		}
		if info.DefaultVersion != 0 {
			rows = append(rows, []string{"Default version", fmt.Sprintf("%d", info.DefaultVersion)})
		}
		output.PrintTable([]string{"COMPONENT", "VERSION"}, rows)
	}
	return nil
}
